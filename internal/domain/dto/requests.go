package dto

import (
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// CreateOrganizationRequest is the payload of POST /organizations.
type CreateOrganizationRequest struct {
	Nombre string            `json:"nombre" validate:"required"`
	Logo   string            `json:"logo"`
	Web    string            `json:"web"`
	Bio    string            `json:"bio"`
	Redes  map[string]string `json:"redes"`
}

// CreateOpportunityRequest is the payload of POST /opportunities.
type CreateOpportunityRequest struct {
	Titulo             string                  `json:"titulo" validate:"required"`
	Tipo               entity.OpportunityType  `json:"tipo" validate:"required,enum"`
	OrganizacionID     string                  `json:"organizacion_id" validate:"required"`
	OrganizacionNombre string                  `json:"organizacion_nombre" validate:"required"`
	Ubicacion          string                  `json:"ubicacion" validate:"required"`
	Lat                *float64                `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng                *float64                `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	Modalidad          string                  `json:"modalidad"`
	Nivel              entity.OpportunityLevel `json:"nivel" validate:"required,enum"`
	Remuneracion       string                  `json:"remuneracion"`
	Beneficios         string                  `json:"beneficios"`
	FechaLimite        *time.Time              `json:"fecha_limite"`
	Descripcion        string                  `json:"descripcion" validate:"required"`
	Requisitos         string                  `json:"requisitos"`
	Contacto           string                  `json:"contacto" validate:"required,email"`
	Tags               []string                `json:"tags"`
	Cupos              *int                    `json:"cupos" validate:"omitempty,gte=0"`
	EnlaceExterno      string                  `json:"enlace_externo"`
}

// UpdateOpportunityStatusRequest is the payload of PATCH /opportunities/{id}/status.
type UpdateOpportunityStatusRequest struct {
	Estado entity.OpportunityStatus `json:"estado" validate:"required,enum"`
}

// CreateUserRequest is the payload of POST /users.
type CreateUserRequest struct {
	Nombre               string          `json:"nombre" validate:"required"`
	Email                string          `json:"email" validate:"required,email"`
	Rol                  entity.UserRole `json:"rol" validate:"required,enum"`
	Posicion             string          `json:"posicion"`
	Altura               *int            `json:"altura" validate:"omitempty,gt=0"`
	Ciudad               string          `json:"ciudad"`
	HighlightsURL        string          `json:"highlights_url"`
	Bio                  string          `json:"bio"`
	Foto                 string          `json:"foto"`
	DisponibilidadViajar *bool           `json:"disponibilidad_viajar"`
}

// CreateArticleRequest is the payload of POST /articles.
type CreateArticleRequest struct {
	Titulo    string `json:"titulo" validate:"required"`
	Extracto  string `json:"extracto" validate:"required"`
	Portada   string `json:"portada"`
	Cuerpo    string `json:"cuerpo" validate:"required"`
	Categoria string `json:"categoria" validate:"required"`
	Autor     string `json:"autor" validate:"required"`
}

// CreateTestimonialRequest is the payload of POST /testimonials.
type CreateTestimonialRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Rol    string `json:"rol" validate:"required"`
	Texto  string `json:"texto" validate:"required"`
	Foto   string `json:"foto"`
}

// SubscribeRequest is the payload of POST /newsletter/subscribe.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ContactRequest is the payload of POST /contact.
type ContactRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Categoria string `json:"categoria" validate:"required"`
	Mensaje   string `json:"mensaje" validate:"required"`
}

// MessageResponse is the body of endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}
