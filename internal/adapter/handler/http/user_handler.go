package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/usecase"
)

// UserHandler serves the user profile endpoints.
type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
}

// List returns user profiles, optionally filtered by role.
// @Summary List users
// @Tags users
// @Produce json
// @Param rol query string false "Role"
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Skip"
// @Success 200 {array} entity.User
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var filter dto.UserFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	page, err := pageParams(c, entity.UserListPolicy)
	if err != nil {
		return err
	}
	filter.Page = page

	users, err := h.userUseCase.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create registers a user profile.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} entity.User
// @Failure 400 {object} errors.Response
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	user, err := h.userUseCase.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}
