package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/usecase"
)

// ServiceInfo is reported by the API root.
type ServiceInfo struct {
	Name    string
	Version string
}

// Handlers holds every HTTP handler of the API.
type Handlers struct {
	info         ServiceInfo
	Organization *OrganizationHandler
	Opportunity  *OpportunityHandler
	User         *UserHandler
	Content      *ContentHandler
	Inbound      *InboundHandler
	Search       *SearchHandler
}

func NewHandlers(useCases *usecase.UseCases, info ServiceInfo) *Handlers {
	return &Handlers{
		info:         info,
		Organization: NewOrganizationHandler(useCases.Organization),
		Opportunity:  NewOpportunityHandler(useCases.Opportunity),
		User:         NewUserHandler(useCases.User),
		Content:      NewContentHandler(useCases.Content),
		Inbound:      NewInboundHandler(useCases.Inbound),
		Search:       NewSearchHandler(useCases.Search),
	}
}

// RegisterRoutes mounts every endpoint under basePath.
func (h *Handlers) RegisterRoutes(basePath string) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		g := e.Group(basePath)
		g.GET("", h.Root)
		g.GET("/", h.Root)

		h.Organization.RegisterRoutes(g)
		h.Opportunity.RegisterRoutes(g)
		h.User.RegisterRoutes(g)
		h.Content.RegisterRoutes(g)
		h.Inbound.RegisterRoutes(g)
		h.Search.RegisterRoutes(g)
	}
}

// Root reports the service name and version.
func (h *Handlers) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": h.info.Name,
		"version": h.info.Version,
	})
}
