package mapper

import (
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
)

// OpportunityToDocument converts an opportunity into its stored form.
func OpportunityToDocument(opp *entity.Opportunity) *model.OpportunityDocument {
	if opp == nil {
		return nil
	}

	tags := opp.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.OpportunityDocument{
		ID:                 opp.ID,
		Titulo:             opp.Titulo,
		Slug:               opp.Slug,
		Tipo:               string(opp.Tipo),
		OrganizacionID:     opp.OrganizacionID,
		OrganizacionNombre: opp.OrganizacionNombre,
		Ubicacion:          opp.Ubicacion,
		Lat:                opp.Lat,
		Lng:                opp.Lng,
		Modalidad:          opp.Modalidad,
		Nivel:              string(opp.Nivel),
		Remuneracion:       opp.Remuneracion,
		Beneficios:         opp.Beneficios,
		FechaPublicacion:   model.FormatTimestamp(opp.FechaPublicacion),
		FechaLimite:        model.FormatOptionalTimestamp(opp.FechaLimite),
		Descripcion:        opp.Descripcion,
		Requisitos:         opp.Requisitos,
		Contacto:           opp.Contacto,
		Verificacion:       opp.Verificacion,
		Estado:             string(opp.Estado),
		Tags:               tags,
		Cupos:              opp.Cupos,
		EnlaceExterno:      opp.EnlaceExterno,
	}
}

// OpportunityFromDocument converts a stored opportunity into an entity.
func OpportunityFromDocument(doc *model.OpportunityDocument) *entity.Opportunity {
	if doc == nil {
		return nil
	}

	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	modalidad := doc.Modalidad
	if modalidad == "" {
		modalidad = entity.DefaultModalidad
	}

	return &entity.Opportunity{
		ID:                 doc.ID,
		Titulo:             doc.Titulo,
		Slug:               doc.Slug,
		Tipo:               entity.OpportunityType(doc.Tipo),
		OrganizacionID:     doc.OrganizacionID,
		OrganizacionNombre: doc.OrganizacionNombre,
		Ubicacion:          doc.Ubicacion,
		Lat:                doc.Lat,
		Lng:                doc.Lng,
		Modalidad:          modalidad,
		Nivel:              entity.OpportunityLevel(doc.Nivel),
		Remuneracion:       doc.Remuneracion,
		Beneficios:         doc.Beneficios,
		FechaPublicacion:   model.ParseTimestamp(doc.FechaPublicacion),
		FechaLimite:        model.ParseOptionalTimestamp(doc.FechaLimite),
		Descripcion:        doc.Descripcion,
		Requisitos:         doc.Requisitos,
		Contacto:           doc.Contacto,
		Verificacion:       doc.Verificacion,
		Estado:             entity.OpportunityStatus(doc.Estado),
		Tags:               tags,
		Cupos:              doc.Cupos,
		EnlaceExterno:      doc.EnlaceExterno,
	}
}

// OpportunitiesFromDocuments never returns nil.
func OpportunitiesFromDocuments(docs []model.OpportunityDocument) []*entity.Opportunity {
	opps := make([]*entity.Opportunity, len(docs))
	for i := range docs {
		opps[i] = OpportunityFromDocument(&docs[i])
	}
	return opps
}
