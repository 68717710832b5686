package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/usecase"
)

// ContentHandler serves articles, testimonials and plans.
type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase}
}

func (h *ContentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/articles", h.ListArticles)
	g.GET("/articles/slug/:slug", h.GetArticleBySlug)
	g.GET("/articles/:id", h.GetArticle)
	g.POST("/articles", h.CreateArticle)

	g.GET("/testimonials", h.ListTestimonials)
	g.POST("/testimonials", h.CreateTestimonial)

	g.GET("/plans", h.ListPlans)
}

// ListArticles returns articles, newest first.
// @Summary List articles
// @Tags articles
// @Produce json
// @Param categoria query string false "Category"
// @Param limit query int false "Page size (1-50)"
// @Param offset query int false "Skip"
// @Success 200 {array} entity.Article
// @Router /articles [get]
func (h *ContentHandler) ListArticles(c echo.Context) error {
	var filter dto.ArticleFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	page, err := pageParams(c, entity.ArticleListPolicy)
	if err != nil {
		return err
	}
	filter.Page = page

	articles, err := h.contentUseCase.ListArticles(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// @Router /articles/{id} [get]
func (h *ContentHandler) GetArticle(c echo.Context) error {
	article, err := h.contentUseCase.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// @Router /articles/slug/{slug} [get]
func (h *ContentHandler) GetArticleBySlug(c echo.Context) error {
	article, err := h.contentUseCase.GetArticleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// CreateArticle publishes an article.
// @Summary Create article
// @Tags articles
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "Article"
// @Success 201 {object} entity.Article
// @Failure 400 {object} errors.Response
// @Router /articles [post]
func (h *ContentHandler) CreateArticle(c echo.Context) error {
	var req dto.CreateArticleRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	article, err := h.contentUseCase.CreateArticle(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

// @Router /testimonials [get]
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.contentUseCase.ListTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// @Router /testimonials [post]
func (h *ContentHandler) CreateTestimonial(c echo.Context) error {
	var req dto.CreateTestimonialRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	testimonial, err := h.contentUseCase.CreateTestimonial(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, testimonial)
}

// ListPlans returns the pricing plans.
// @Router /plans [get]
func (h *ContentHandler) ListPlans(c echo.Context) error {
	plans, err := h.contentUseCase.ListPlans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}
