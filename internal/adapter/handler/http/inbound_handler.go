package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/usecase"
)

// InboundHandler serves visitor submissions.
type InboundHandler struct {
	inboundUseCase *usecase.InboundUseCase
}

func NewInboundHandler(inboundUseCase *usecase.InboundUseCase) *InboundHandler {
	return &InboundHandler{inboundUseCase: inboundUseCase}
}

func (h *InboundHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/newsletter/subscribe", h.Subscribe)
	g.POST("/contact", h.Contact)
}

// Subscribe adds an email to the newsletter. The address is read from the
// JSON body, or from the email query parameter when the body has none.
// @Summary Subscribe to newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest false "Subscriber"
// @Param email query string false "Subscriber email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} errors.Response
// @Router /newsletter/subscribe [post]
func (h *InboundHandler) Subscribe(c echo.Context) error {
	var req dto.SubscribeRequest
	if err := binder.BindBody(c, &req); err != nil {
		return bindError(err)
	}
	if req.Email == "" {
		req.Email = c.QueryParam("email")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.inboundUseCase.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Contact stores a contact form submission.
// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Message"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} errors.Response
// @Router /contact [post]
func (h *InboundHandler) Contact(c echo.Context) error {
	var req dto.ContactRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	resp, err := h.inboundUseCase.SubmitContact(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
