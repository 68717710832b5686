package mapper

import (
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
)

// OrganizationToDocument converts an organization into its stored form.
func OrganizationToDocument(org *entity.Organization) *model.OrganizationDocument {
	if org == nil {
		return nil
	}

	redes := org.Redes
	if redes == nil {
		redes = map[string]string{}
	}

	return &model.OrganizationDocument{
		ID:            org.ID,
		Nombre:        org.Nombre,
		Slug:          org.Slug,
		Logo:          org.Logo,
		Web:           org.Web,
		Bio:           org.Bio,
		Verificada:    org.Verificada,
		Redes:         redes,
		FechaCreacion: model.FormatTimestamp(org.FechaCreacion),
	}
}

// OrganizationFromDocument converts a stored organization into an entity.
func OrganizationFromDocument(doc *model.OrganizationDocument) *entity.Organization {
	if doc == nil {
		return nil
	}

	redes := doc.Redes
	if redes == nil {
		redes = map[string]string{}
	}

	return &entity.Organization{
		ID:            doc.ID,
		Nombre:        doc.Nombre,
		Slug:          doc.Slug,
		Logo:          doc.Logo,
		Web:           doc.Web,
		Bio:           doc.Bio,
		Verificada:    doc.Verificada,
		Redes:         redes,
		FechaCreacion: model.ParseTimestamp(doc.FechaCreacion),
	}
}

// OrganizationsFromDocuments never returns nil.
func OrganizationsFromDocuments(docs []model.OrganizationDocument) []*entity.Organization {
	orgs := make([]*entity.Organization, len(docs))
	for i := range docs {
		orgs[i] = OrganizationFromDocument(&docs[i])
	}
	return orgs
}
