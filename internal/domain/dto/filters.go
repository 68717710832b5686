package dto

import "github.com/workhoops/workhoops-api/internal/domain/entity"

// OpportunityFilter selects opportunities for a list query. An empty Estado
// is resolved to published by the use case.
type OpportunityFilter struct {
	Tipo      entity.OpportunityType   `query:"tipo" validate:"omitempty,enum"`
	Nivel     entity.OpportunityLevel  `query:"nivel" validate:"omitempty,enum"`
	Ubicacion string                   `query:"ubicacion"`
	Estado    entity.OpportunityStatus `query:"estado" validate:"omitempty,enum"`
	Page      entity.Page              `query:"-"`
}

// UserFilter selects users for a list query.
type UserFilter struct {
	Rol  entity.UserRole `query:"rol" validate:"omitempty,enum"`
	Page entity.Page     `query:"-"`
}

// ArticleFilter selects articles for a list query.
type ArticleFilter struct {
	Categoria string      `query:"categoria"`
	Page      entity.Page `query:"-"`
}

// SearchQuery is the query string of GET /search.
type SearchQuery struct {
	Q    string             `query:"q" validate:"required"`
	Tipo entity.SearchScope `query:"tipo" validate:"omitempty,enum"`
}
