package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/usecase"
)

// SearchHandler serves full-text search over published content.
type SearchHandler struct {
	searchUseCase *usecase.SearchUseCase
}

func NewSearchHandler(searchUseCase *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{searchUseCase: searchUseCase}
}

func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
}

// Search runs a text query over opportunities, articles or both.
// @Summary Search
// @Tags search
// @Produce json
// @Param q query string true "Text query"
// @Param tipo query string false "oportunidades or articulos"
// @Success 200 {object} entity.SearchResult
// @Failure 400 {object} errors.Response
// @Router /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	var query dto.SearchQuery
	if err := bindQuery(c, &query); err != nil {
		return err
	}

	result, err := h.searchUseCase.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
