package entity

// OpportunityType classifies a posted opportunity.
type OpportunityType string

const (
	OpportunityTypeEmpleo     OpportunityType = "empleo"     // job
	OpportunityTypePrueba     OpportunityType = "prueba"     // trial
	OpportunityTypeTorneo     OpportunityType = "torneo"     // tournament
	OpportunityTypeClinica    OpportunityType = "clinica"    // clinic
	OpportunityTypeBeca       OpportunityType = "beca"       // scholarship
	OpportunityTypePatrocinio OpportunityType = "patrocinio" // sponsorship
)

// IsValid reports whether t is one of the known types.
func (t OpportunityType) IsValid() bool {
	switch t {
	case OpportunityTypeEmpleo, OpportunityTypePrueba, OpportunityTypeTorneo,
		OpportunityTypeClinica, OpportunityTypeBeca, OpportunityTypePatrocinio:
		return true
	}
	return false
}

// OpportunityLevel is the competitive level an opportunity targets.
type OpportunityLevel string

const (
	OpportunityLevelAmateur     OpportunityLevel = "amateur"
	OpportunityLevelSemiPro     OpportunityLevel = "semi-pro"
	OpportunityLevelCantera     OpportunityLevel = "cantera" // youth academy
	OpportunityLevelProfesional OpportunityLevel = "profesional"
)

func (l OpportunityLevel) IsValid() bool {
	switch l {
	case OpportunityLevelAmateur, OpportunityLevelSemiPro, OpportunityLevelCantera, OpportunityLevelProfesional:
		return true
	}
	return false
}

// OpportunityStatus is the publication state of an opportunity.
// Only published opportunities are listed by default.
type OpportunityStatus string

const (
	OpportunityStatusBorrador  OpportunityStatus = "borrador"  // draft
	OpportunityStatusPendiente OpportunityStatus = "pendiente" // pending review
	OpportunityStatusPublicada OpportunityStatus = "publicada" // published
	OpportunityStatusCerrada   OpportunityStatus = "cerrada"   // closed
)

func (s OpportunityStatus) IsValid() bool {
	switch s {
	case OpportunityStatusBorrador, OpportunityStatusPendiente, OpportunityStatusPublicada, OpportunityStatusCerrada:
		return true
	}
	return false
}

// UserRole is the professional role of a registered user.
type UserRole string

const (
	UserRoleJugador    UserRole = "jugador"    // player
	UserRoleEntrenador UserRole = "entrenador" // coach
	UserRoleFisio      UserRole = "fisio"      // physiotherapist
	UserRoleArbitro    UserRole = "arbitro"    // referee
	UserRoleStaff      UserRole = "staff"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleJugador, UserRoleEntrenador, UserRoleFisio, UserRoleArbitro, UserRoleStaff:
		return true
	}
	return false
}
