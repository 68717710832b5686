package entity

import "time"

// DefaultModalidad is used when an opportunity does not state its modality.
const DefaultModalidad = "presencial"

// Opportunity is a posted tender: a job, trial, tournament, clinic,
// scholarship or sponsorship offered by an organization.
type Opportunity struct {
	ID                 string            `json:"id"`
	Titulo             string            `json:"titulo"`
	Slug               string            `json:"slug"`
	Tipo               OpportunityType   `json:"tipo"`
	OrganizacionID     string            `json:"organizacion_id"`
	OrganizacionNombre string            `json:"organizacion_nombre"`
	Ubicacion          string            `json:"ubicacion"`
	Lat                *float64          `json:"lat,omitempty"`
	Lng                *float64          `json:"lng,omitempty"`
	Modalidad          string            `json:"modalidad"`
	Nivel              OpportunityLevel  `json:"nivel"`
	Remuneracion       string            `json:"remuneracion,omitempty"`
	Beneficios         string            `json:"beneficios,omitempty"`
	FechaPublicacion   time.Time         `json:"fecha_publicacion"`
	FechaLimite        *time.Time        `json:"fecha_limite,omitempty"`
	Descripcion        string            `json:"descripcion"`
	Requisitos         string            `json:"requisitos,omitempty"`
	Contacto           string            `json:"contacto"`
	Verificacion       bool              `json:"verificacion"`
	Estado             OpportunityStatus `json:"estado"`
	Tags               []string          `json:"tags"`
	Cupos              *int              `json:"cupos,omitempty"`
	EnlaceExterno      string            `json:"enlace_externo,omitempty"`
}

// NewOpportunity stamps id, slug, publication time and the pending status.
func NewOpportunity(titulo string, now time.Time) *Opportunity {
	return &Opportunity{
		ID:               NewID(),
		Titulo:           titulo,
		Slug:             Slugify(titulo),
		Modalidad:        DefaultModalidad,
		FechaPublicacion: now.UTC(),
		Estado:           OpportunityStatusPendiente,
		Tags:             []string{},
	}
}

// IsPublished reports whether the opportunity is publicly listed.
func (o *Opportunity) IsPublished() bool {
	return o.Estado == OpportunityStatusPublicada
}
