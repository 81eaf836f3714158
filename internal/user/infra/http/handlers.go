package http

import (
	"errors"

	"github.com/bidworks/marketengine/internal/user/application"
	"github.com/bidworks/marketengine/internal/user/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes registration and the per-user item dashboard over HTTP.
type Handler struct {
	svc application.UserService
}

func NewHandler(svc application.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/users", h.Register)
	app.Get("/users/:id/items", h.ItemDashboard)
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// userResponse is the public shape of an account. The password hash never
// leaves the service.
type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.Register(c.Context(), application.RegisterUserDTO{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": vErr.Error(),
				"field": vErr.Field,
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
	})
}

func (h *Handler) ItemDashboard(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	dashboard, err := h.svc.ItemDashboard(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(dashboard)
}
