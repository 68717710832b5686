package mapper

import (
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
)

func ArticleToDocument(article *entity.Article) *model.ArticleDocument {
	if article == nil {
		return nil
	}

	return &model.ArticleDocument{
		ID:               article.ID,
		Titulo:           article.Titulo,
		Slug:             article.Slug,
		Extracto:         article.Extracto,
		Portada:          article.Portada,
		Cuerpo:           article.Cuerpo,
		Categoria:        article.Categoria,
		Autor:            article.Autor,
		FechaPublicacion: model.FormatTimestamp(article.FechaPublicacion),
	}
}

func ArticleFromDocument(doc *model.ArticleDocument) *entity.Article {
	if doc == nil {
		return nil
	}

	return &entity.Article{
		ID:               doc.ID,
		Titulo:           doc.Titulo,
		Slug:             doc.Slug,
		Extracto:         doc.Extracto,
		Portada:          doc.Portada,
		Cuerpo:           doc.Cuerpo,
		Categoria:        doc.Categoria,
		Autor:            doc.Autor,
		FechaPublicacion: model.ParseTimestamp(doc.FechaPublicacion),
	}
}

func ArticlesFromDocuments(docs []model.ArticleDocument) []*entity.Article {
	articles := make([]*entity.Article, len(docs))
	for i := range docs {
		articles[i] = ArticleFromDocument(&docs[i])
	}
	return articles
}

func TestimonialToDocument(t *entity.Testimonial) *model.TestimonialDocument {
	if t == nil {
		return nil
	}
	return &model.TestimonialDocument{ID: t.ID, Nombre: t.Nombre, Rol: t.Rol, Texto: t.Texto, Foto: t.Foto}
}

func TestimonialsFromDocuments(docs []model.TestimonialDocument) []*entity.Testimonial {
	out := make([]*entity.Testimonial, len(docs))
	for i, doc := range docs {
		out[i] = &entity.Testimonial{ID: doc.ID, Nombre: doc.Nombre, Rol: doc.Rol, Texto: doc.Texto, Foto: doc.Foto}
	}
	return out
}

func PlanToDocument(plan *entity.Plan) *model.PlanDocument {
	if plan == nil {
		return nil
	}

	beneficios := plan.Beneficios
	if beneficios == nil {
		beneficios = []string{}
	}

	return &model.PlanDocument{
		ID:                  plan.ID,
		Nombre:              plan.Nombre,
		Precio:              plan.Precio,
		Beneficios:          beneficios,
		LimitePublicaciones: plan.LimitePublicaciones,
		Destacar:            plan.Destacar,
	}
}

func PlansFromDocuments(docs []model.PlanDocument) []*entity.Plan {
	out := make([]*entity.Plan, len(docs))
	for i, doc := range docs {
		beneficios := doc.Beneficios
		if beneficios == nil {
			beneficios = []string{}
		}
		out[i] = &entity.Plan{
			ID:                  doc.ID,
			Nombre:              doc.Nombre,
			Precio:              doc.Precio,
			Beneficios:          beneficios,
			LimitePublicaciones: doc.LimitePublicaciones,
			Destacar:            doc.Destacar,
		}
	}
	return out
}
