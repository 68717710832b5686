package mapper

import (
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
)

func NewsletterToDocument(sub *entity.NewsletterSubscription) *model.NewsletterDocument {
	if sub == nil {
		return nil
	}

	return &model.NewsletterDocument{
		ID:               sub.ID,
		Email:            sub.Email,
		FechaSuscripcion: model.FormatTimestamp(sub.FechaSuscripcion),
		Activa:           sub.Activa,
	}
}

func NewsletterFromDocument(doc *model.NewsletterDocument) *entity.NewsletterSubscription {
	if doc == nil {
		return nil
	}

	return &entity.NewsletterSubscription{
		ID:               doc.ID,
		Email:            doc.Email,
		FechaSuscripcion: model.ParseTimestamp(doc.FechaSuscripcion),
		Activa:           doc.Activa,
	}
}

func ContactFormToDocument(form *entity.ContactForm) *model.ContactFormDocument {
	if form == nil {
		return nil
	}

	return &model.ContactFormDocument{
		ID:         form.ID,
		Nombre:     form.Nombre,
		Email:      form.Email,
		Categoria:  form.Categoria,
		Mensaje:    form.Mensaje,
		FechaEnvio: model.FormatTimestamp(form.FechaEnvio),
	}
}
