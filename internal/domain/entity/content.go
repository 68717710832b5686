package entity

import "time"

// Article is an editorial piece.
type Article struct {
	ID               string    `json:"id"`
	Titulo           string    `json:"titulo"`
	Slug             string    `json:"slug"`
	Extracto         string    `json:"extracto"`
	Portada          string    `json:"portada,omitempty"`
	Cuerpo           string    `json:"cuerpo"`
	Categoria        string    `json:"categoria"`
	Autor            string    `json:"autor"`
	FechaPublicacion time.Time `json:"fecha_publicacion"`
}

// NewArticle stamps id, slug and publication time.
func NewArticle(titulo string, now time.Time) *Article {
	return &Article{
		ID:               NewID(),
		Titulo:           titulo,
		Slug:             Slugify(titulo),
		FechaPublicacion: now.UTC(),
	}
}

// Testimonial is a quote shown on the landing page. Rol is a free label.
type Testimonial struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	Texto  string `json:"texto"`
	Foto   string `json:"foto,omitempty"`
}

// Plan is a publishing plan offered to organizations.
type Plan struct {
	ID                  string   `json:"id"`
	Nombre              string   `json:"nombre"`
	Precio              float64  `json:"precio"`
	Beneficios          []string `json:"beneficios"`
	LimitePublicaciones *int     `json:"limite_publicaciones,omitempty"` // nil means unlimited
	Destacar            bool     `json:"destacar"`
}
