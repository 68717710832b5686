package entity

import "time"

// User is a registered professional profile.
type User struct {
	ID                   string    `json:"id"`
	Nombre               string    `json:"nombre"`
	Email                string    `json:"email"`
	Rol                  UserRole  `json:"rol"`
	Posicion             string    `json:"posicion,omitempty"`
	Altura               *int      `json:"altura,omitempty"` // cm
	Ciudad               string    `json:"ciudad,omitempty"`
	HighlightsURL        string    `json:"highlights_url,omitempty"`
	Bio                  string    `json:"bio,omitempty"`
	Foto                 string    `json:"foto,omitempty"`
	DisponibilidadViajar bool      `json:"disponibilidad_viajar"`
	Verificado           bool      `json:"verificado"`
	FechaRegistro        time.Time `json:"fecha_registro"`
}

// NewUser stamps id and registration time on an unverified user.
func NewUser(nombre, email string, rol UserRole, now time.Time) *User {
	return &User{
		ID:                   NewID(),
		Nombre:               nombre,
		Email:                email,
		Rol:                  rol,
		DisponibilidadViajar: true,
		FechaRegistro:        now.UTC(),
	}
}
