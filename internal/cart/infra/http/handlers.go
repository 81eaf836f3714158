package http

import (
	"encoding/json"

	"github.com/bidworks/marketengine/internal/cart/domain"
	"github.com/bidworks/marketengine/internal/shared/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

const sessionKey = "cart"

// Handler serves the session cart. The cart lives entirely in the caller's
// session: every request rebuilds it from the stored snapshot and every
// mutation writes the snapshot back.
type Handler struct {
	store *session.Store
}

func NewHandler(store *session.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/cart", h.GetCart)
	app.Post("/cart/items/:id", h.AddItem)
	app.Put("/cart/items/:id", h.UpdateQuantity)
	app.Delete("/cart/items/:id", h.RemoveItem)
}

func (h *Handler) load(sess *session.Session) *domain.Cart {
	raw, ok := sess.Get(sessionKey).([]byte)
	if !ok {
		return domain.New()
	}
	var contents map[uuid.UUID]int
	if err := json.Unmarshal(raw, &contents); err != nil {
		log.Warn("Cart: discarding unreadable session snapshot", zap.Error(err))
		return domain.New()
	}
	return domain.FromContents(contents)
}

func (h *Handler) save(sess *session.Session, cart *domain.Cart) error {
	raw, err := json.Marshal(cart.Contents())
	if err != nil {
		return err
	}
	sess.Set(sessionKey, raw)
	return sess.Save()
}

func (h *Handler) GetCart(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(h.load(sess).Contents())
}

func (h *Handler) AddItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	cart := h.load(sess)
	cart.AddItem(itemID)
	if err := h.save(sess, cart); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusOK).JSON(cart.Contents())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateQuantity(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	cart := h.load(sess)
	cart.UpdateQuantity(itemID, req.Quantity)
	if err := h.save(sess, cart); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(cart.Contents())
}

func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	cart := h.load(sess)
	cart.RemoveItem(itemID)
	if err := h.save(sess, cart); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(cart.Contents())
}
