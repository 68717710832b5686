package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"FC Barcelona Basquet":             "fc-barcelona-basquet",
		"Entrenador Cantera Masculina U16": "entrenador-cantera-masculina-u16",
		"Campus 3x3 / Verano":              "campus-3x3---verano",
		"Árbitro  Ñ":                       "árbitro--ñ",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestEnums(t *testing.T) {
	assert.True(t, OpportunityTypePatrocinio.IsValid())
	assert.False(t, OpportunityType("Empleo").IsValid())
	assert.True(t, OpportunityLevelSemiPro.IsValid())
	assert.False(t, OpportunityLevel("semipro").IsValid())
	assert.True(t, OpportunityStatusCerrada.IsValid())
	assert.False(t, OpportunityStatus("").IsValid())
	assert.True(t, UserRoleArbitro.IsValid())
	assert.False(t, UserRole("admin").IsValid())
}

func TestNewOpportunity_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	a := NewOpportunity("Entrenador Cantera Masculina U16", now)
	b := NewOpportunity("Entrenador Cantera Masculina U16", now)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Slug, b.Slug)
	assert.Equal(t, OpportunityStatusPendiente, a.Estado)
	assert.Equal(t, DefaultModalidad, a.Modalidad)
	assert.Equal(t, []string{}, a.Tags)
	assert.Equal(t, time.UTC, a.FechaPublicacion.Location())
	assert.False(t, a.IsPublished())
}

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("Laura", "laura@example.com", UserRoleJugador, time.Now())
	assert.True(t, u.DisponibilidadViajar)
	assert.False(t, u.Verificado)
}

func TestNewOrganization_EmptyRedes(t *testing.T) {
	org := NewOrganization("FC Barcelona Basquet", time.Now())
	data, err := json.Marshal(org)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"redes":{}`)
	assert.Contains(t, string(data), `"slug":"fc-barcelona-basquet"`)
}

func intPtr(v int) *int { return &v }

func TestListPolicy_Resolve(t *testing.T) {
	page, err := OpportunityListPolicy.Resolve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: 20, Offset: 0}, page)

	page, err = ArticleListPolicy.Resolve(intPtr(50), intPtr(5))
	require.NoError(t, err)
	assert.Equal(t, Page{Limit: 50, Offset: 5}, page)

	_, err = ArticleListPolicy.Resolve(intPtr(51), nil)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	assert.Equal(t, []apperrors.FieldError{{Field: "limit", Rule: "max", Param: "50"}}, appErr.Fields())

	_, err = UserListPolicy.Resolve(intPtr(0), intPtr(-1))
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Fields(), 2)
}

func TestSearchScope(t *testing.T) {
	assert.True(t, SearchScopeAll.IncludesOpportunities())
	assert.True(t, SearchScopeAll.IncludesArticles())
	assert.False(t, SearchScopeArticulos.IncludesOpportunities())
	assert.False(t, SearchScopeOportunidades.IncludesArticles())
	assert.False(t, SearchScope("equipos").IsValid())
}

func TestSearchResult_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(SearchResult{Articles: []*Article{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"articles":[]}`, string(data))

	data, err = json.Marshal(SearchResult{Opportunities: []*Opportunity{}, Articles: []*Article{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"opportunities":[],"articles":[]}`, string(data))
}

func TestNewEvent(t *testing.T) {
	ev := NewEvent(EventNewsletterSubscribed, map[string]string{"email": "a@b.es"}, time.Now())
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, EventNewsletterSubscribed, ev.Type)
	assert.Equal(t, time.UTC, ev.OccurredAt.Location())
}
