package entity

import "time"

// Organization is a club, federation or company that posts opportunities.
type Organization struct {
	ID            string            `json:"id"`
	Nombre        string            `json:"nombre"`
	Slug          string            `json:"slug"`
	Logo          string            `json:"logo,omitempty"`
	Web           string            `json:"web,omitempty"`
	Bio           string            `json:"bio,omitempty"`
	Verificada    bool              `json:"verificada"`
	Redes         map[string]string `json:"redes"`
	FechaCreacion time.Time         `json:"fecha_creacion"`
}

// NewOrganization stamps id, slug and creation time on an unverified organization.
func NewOrganization(nombre string, now time.Time) *Organization {
	return &Organization{
		ID:            NewID(),
		Nombre:        nombre,
		Slug:          Slugify(nombre),
		Redes:         map[string]string{},
		FechaCreacion: now.UTC(),
	}
}
