package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/usecase"
)

// OrganizationHandler serves the organization endpoints.
type OrganizationHandler struct {
	orgUseCase *usecase.OrganizationUseCase
}

func NewOrganizationHandler(orgUseCase *usecase.OrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{orgUseCase: orgUseCase}
}

func (h *OrganizationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/organizations", h.List)
	g.GET("/organizations/:id", h.Get)
	g.POST("/organizations", h.Create)
}

// List returns every organization.
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} entity.Organization
// @Router /organizations [get]
func (h *OrganizationHandler) List(c echo.Context) error {
	orgs, err := h.orgUseCase.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orgs)
}

// Get returns one organization by id.
// @Summary Get organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} entity.Organization
// @Failure 404 {object} errors.Response
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) Get(c echo.Context) error {
	org, err := h.orgUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// Create registers an organization.
// @Summary Create organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body dto.CreateOrganizationRequest true "Organization"
// @Success 201 {object} entity.Organization
// @Failure 400 {object} errors.Response
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req dto.CreateOrganizationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	org, err := h.orgUseCase.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, org)
}
