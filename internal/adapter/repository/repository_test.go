package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhoops/workhoops-api/internal/adapter/mapper"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	domainrepo "github.com/workhoops/workhoops-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func sampleOpportunity(titulo, ubicacion string) *entity.Opportunity {
	opp := entity.NewOpportunity(titulo, time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC))
	opp.Tipo = entity.OpportunityTypeEmpleo
	opp.Nivel = entity.OpportunityLevelProfesional
	opp.OrganizacionID = "org-1"
	opp.OrganizacionNombre = "Valencia Basket"
	opp.Ubicacion = ubicacion
	opp.Descripcion = "Buscamos entrenador"
	opp.Contacto = "rrhh@valenciabasket.es"
	opp.Estado = entity.OpportunityStatusPublicada
	return opp
}

func TestOpportunityFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, opportunityFilter(dto.OpportunityFilter{}))

	filter := opportunityFilter(dto.OpportunityFilter{
		Tipo:      entity.OpportunityTypeBeca,
		Nivel:     entity.OpportunityLevelCantera,
		Ubicacion: "valencia",
		Estado:    entity.OpportunityStatusPendiente,
	})
	assert.Equal(t, "beca", filter["tipo"])
	assert.Equal(t, "cantera", filter["nivel"])
	assert.Equal(t, "pendiente", filter["estado"])
	assert.Equal(t, primitive.Regex{Pattern: "valencia", Options: "i"}, filter["ubicacion"])
}

func TestOpportunityFilter_UbicacionIsLiteralSubstring(t *testing.T) {
	filter := opportunityFilter(dto.OpportunityFilter{Ubicacion: "valencia"})
	re := regexp.MustCompile("(?i)" + filter["ubicacion"].(primitive.Regex).Pattern)
	assert.True(t, re.MatchString("Valencia, España"))
	assert.False(t, re.MatchString("Madrid, España"))

	filter = opportunityFilter(dto.OpportunityFilter{Ubicacion: "A Coruña (Galicia)"})
	assert.Equal(t, `A Coruña \(Galicia\)`, filter["ubicacion"].(primitive.Regex).Pattern)
}

func TestListFilters(t *testing.T) {
	assert.Equal(t, bson.M{}, userFilter(dto.UserFilter{}))
	assert.Equal(t, bson.M{"rol": "fisio"}, userFilter(dto.UserFilter{Rol: entity.UserRoleFisio}))
	assert.Equal(t, bson.M{"categoria": "consejos"}, articleFilter(dto.ArticleFilter{Categoria: "consejos"}))
	assert.Equal(t, bson.M{"$text": bson.M{"$search": "baloncesto"}}, textSearchFilter("baloncesto"))

	opts := pageOptions(entity.Page{Limit: 20, Offset: 40})
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 40, *opts.Skip)
	assert.EqualValues(t, 20, *opts.Limit)
}

func TestOpportunityRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "workhoops.opportunities"

	mt.Run("list decodes documents", func(mt *mtest.T) {
		first := sampleOpportunity("Entrenador Ayudante", "Valencia, España")
		second := sampleOpportunity("Preparador Fisico", "Valencia, España")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			toDoc(t, mapper.OpportunityToDocument(first)),
			toDoc(t, mapper.OpportunityToDocument(second)),
		))

		repo := NewOpportunityRepository(mt.DB)
		opps, err := repo.List(ctx, dto.OpportunityFilter{Ubicacion: "valencia", Page: entity.Page{Limit: 20}})
		require.NoError(mt, err)
		require.Len(mt, opps, 2)
		assert.Equal(mt, first.ID, opps[0].ID)
		assert.Equal(mt, "entrenador-ayudante", opps[0].Slug)
		assert.True(mt, first.FechaPublicacion.Equal(opps[0].FechaPublicacion))
	})

	mt.Run("list of nothing is empty, not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		opps, err := NewOpportunityRepository(mt.DB).List(ctx, dto.OpportunityFilter{Page: entity.Page{Limit: 20}})
		require.NoError(mt, err)
		assert.NotNil(mt, opps)
		assert.Empty(mt, opps)
	})

	mt.Run("find by id miss is ErrNotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewOpportunityRepository(mt.DB).FindByID(ctx, "missing")
		assert.ErrorIs(mt, err, domainrepo.ErrNotFound)
	})

	mt.Run("find by slug", func(mt *mtest.T) {
		opp := sampleOpportunity("Entrenador Cantera Masculina U16", "Badalona")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(t, mapper.OpportunityToDocument(opp))))

		found, err := NewOpportunityRepository(mt.DB).FindBySlug(ctx, "entrenador-cantera-masculina-u16")
		require.NoError(mt, err)
		assert.Equal(mt, opp.ID, found.ID)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := NewOpportunityRepository(mt.DB).Create(ctx, sampleOpportunity("Prueba", "Bilbao"))
		assert.NoError(mt, err)
	})

	mt.Run("update status returns the updated document", func(mt *mtest.T) {
		opp := sampleOpportunity("Campus Verano", "Malaga")
		opp.Estado = entity.OpportunityStatusCerrada
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: toDoc(t, mapper.OpportunityToDocument(opp))},
		))

		updated, err := NewOpportunityRepository(mt.DB).UpdateStatus(ctx, opp.ID, entity.OpportunityStatusCerrada)
		require.NoError(mt, err)
		assert.Equal(mt, entity.OpportunityStatusCerrada, updated.Estado)
	})

	mt.Run("search surfaces command errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    27,
			Name:    "IndexNotFound",
			Message: "text index required for $text query",
		}))

		_, err := NewOpportunityRepository(mt.DB).Search(ctx, "baloncesto", entity.SearchOpportunityLimit)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domainrepo.ErrNotFound)
	})
}

func TestArticleRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "workhoops.articles"

	mt.Run("search", func(mt *mtest.T) {
		article := entity.NewArticle("Baloncesto Formativo", time.Now())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(t, mapper.ArticleToDocument(article))))

		articles, err := NewArticleRepository(mt.DB).Search(ctx, "baloncesto", entity.SearchArticleLimit)
		require.NoError(mt, err)
		require.Len(mt, articles, 1)
		assert.Equal(mt, "baloncesto-formativo", articles[0].Slug)
	})

	mt.Run("find by id miss is ErrNotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewArticleRepository(mt.DB).FindByID(ctx, "missing")
		assert.ErrorIs(mt, err, domainrepo.ErrNotFound)
	})
}

func TestNewsletterRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "workhoops.newsletter"

	mt.Run("existing subscription", func(mt *mtest.T) {
		sub := entity.NewNewsletterSubscription("fan@example.com", time.Now())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(t, mapper.NewsletterToDocument(sub))))

		found, err := NewNewsletterRepository(mt.DB).FindByEmail(ctx, "fan@example.com")
		require.NoError(mt, err)
		assert.True(mt, found.Activa)
	})

	mt.Run("unknown email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewNewsletterRepository(mt.DB).FindByEmail(ctx, "new@example.com")
		assert.ErrorIs(mt, err, domainrepo.ErrNotFound)
	})
}

func TestSimpleCollections(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("plans", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "workhoops.plans", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "free"}, {Key: "nombre", Value: "Gratis"}, {Key: "precio", Value: int32(0)}},
		))

		plans, err := NewPlanRepository(mt.DB).List(ctx)
		require.NoError(mt, err)
		require.Len(mt, plans, 1)
		assert.Equal(mt, 0.0, plans[0].Precio)
		assert.Equal(mt, []string{}, plans[0].Beneficios)
		assert.Nil(mt, plans[0].LimitePublicaciones)
	})

	mt.Run("organizations", func(mt *mtest.T) {
		org := entity.NewOrganization("FC Barcelona Basquet", time.Now())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "workhoops.organizations", mtest.FirstBatch,
			toDoc(t, mapper.OrganizationToDocument(org)),
		))

		orgs, err := NewOrganizationRepository(mt.DB).List(ctx)
		require.NoError(mt, err)
		require.Len(mt, orgs, 1)
		assert.Equal(mt, "fc-barcelona-basquet", orgs[0].Slug)
	})

	mt.Run("contact form insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := NewContactRepository(mt.DB).Create(ctx, &entity.ContactForm{ID: "c1", Nombre: "Ana", FechaEnvio: time.Now()})
		assert.NoError(mt, err)
	})

	mt.Run("users decode legacy documents with _id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "workhoops.users", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "id", Value: "u1"},
				{Key: "nombre", Value: "Marc"},
				{Key: "rol", Value: "jugador"},
				{Key: "altura", Value: int32(198)},
				{Key: "disponibilidad_viajar", Value: true},
				{Key: "fecha_registro", Value: "2024-11-02T18:20:00.000000"},
			},
		))

		users, err := NewUserRepository(mt.DB).List(ctx, dto.UserFilter{Page: entity.Page{Limit: 20}})
		require.NoError(mt, err)
		require.Len(mt, users, 1)
		require.NotNil(mt, users[0].Altura)
		assert.Equal(mt, 198, *users[0].Altura)
		assert.Equal(mt, 2024, users[0].FechaRegistro.Year())
	})
}
