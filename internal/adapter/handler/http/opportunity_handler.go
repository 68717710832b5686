package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/usecase"
)

// OpportunityHandler serves the opportunity endpoints.
type OpportunityHandler struct {
	oppUseCase *usecase.OpportunityUseCase
}

func NewOpportunityHandler(oppUseCase *usecase.OpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{oppUseCase: oppUseCase}
}

func (h *OpportunityHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/opportunities", h.List)
	g.GET("/opportunities/slug/:slug", h.GetBySlug)
	g.GET("/opportunities/:id", h.Get)
	g.POST("/opportunities", h.Create)
	g.PATCH("/opportunities/:id/status", h.UpdateStatus)
}

// List returns opportunities matching the query filters, newest first.
// @Summary List opportunities
// @Tags opportunities
// @Produce json
// @Param tipo query string false "Opportunity type"
// @Param nivel query string false "Level"
// @Param ubicacion query string false "Location substring, case-insensitive"
// @Param estado query string false "Status, defaults to publicada"
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Skip"
// @Success 200 {array} entity.Opportunity
// @Failure 400 {object} errors.Response
// @Router /opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	var filter dto.OpportunityFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	page, err := pageParams(c, entity.OpportunityListPolicy)
	if err != nil {
		return err
	}
	filter.Page = page

	opps, err := h.oppUseCase.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opps)
}

// Get returns one opportunity by id.
// @Summary Get opportunity
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} entity.Opportunity
// @Failure 404 {object} errors.Response
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c echo.Context) error {
	opp, err := h.oppUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// GetBySlug returns one opportunity by slug.
// @Router /opportunities/slug/{slug} [get]
func (h *OpportunityHandler) GetBySlug(c echo.Context) error {
	opp, err := h.oppUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// Create publishes a new opportunity for moderation.
// @Summary Create opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body dto.CreateOpportunityRequest true "Opportunity"
// @Success 201 {object} entity.Opportunity
// @Failure 400 {object} errors.Response
// @Router /opportunities [post]
func (h *OpportunityHandler) Create(c echo.Context) error {
	var req dto.CreateOpportunityRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	opp, err := h.oppUseCase.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, opp)
}

// UpdateStatus moves an opportunity through moderation.
// @Summary Update opportunity status
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param request body dto.UpdateOpportunityStatusRequest true "New status"
// @Success 200 {object} entity.Opportunity
// @Failure 400 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /opportunities/{id}/status [patch]
func (h *OpportunityHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateOpportunityStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	opp, err := h.oppUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Estado)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}
