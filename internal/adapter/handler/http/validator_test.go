package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&dto.UpdateOpportunityStatusRequest{Estado: entity.OpportunityStatusCerrada}))
	assert.NoError(t, v.Validate(&dto.SearchQuery{Q: "base"}))

	err := v.Validate(&dto.SearchQuery{Tipo: "videos"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	assert.ElementsMatch(t, []apperrors.FieldError{
		{Field: "q", Rule: "required"},
		{Field: "tipo", Rule: "enum"},
	}, appErr.Fields())

	lat := 123.0
	err = v.Validate(&dto.CreateOpportunityRequest{
		Titulo: "x", Tipo: entity.OpportunityTypeBeca, OrganizacionID: "o", OrganizacionNombre: "O",
		Ubicacion: "Bilbao", Nivel: entity.OpportunityLevelCantera, Descripcion: "d", Contacto: "a@b.es",
		Lat: &lat,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, []apperrors.FieldError{{Field: "lat", Rule: "lte", Param: "90"}}, appErr.Fields())
}
