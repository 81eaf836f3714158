package http

import (
	"errors"
	"time"

	"github.com/bidworks/marketengine/internal/auction/application"
	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handler exposes the auction use cases over HTTP. It owns no business
// rules: it parses, delegates, and maps domain errors to status codes.
type Handler struct {
	svc application.AuctionService
}

func NewHandler(svc application.AuctionService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/items/:id", h.GetItem)
	app.Get("/items/:id/bids", h.ListBids)
	app.Post("/items", h.CreateItem)
	app.Post("/items/:id/bids", h.PlaceBid)
	app.Put("/items/:id/business", h.AssignBusiness)
}

func (h *Handler) GetItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	view, err := h.svc.GetItemView(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "item not found")
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(view)
}

func (h *Handler) ListBids(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	bids, err := h.svc.ListBids(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "item not found")
		}
		return fiber.ErrInternalServerError
	}

	ledger := make([]application.BidDTO, 0, len(bids))
	for _, bid := range bids {
		ledger = append(ledger, application.NewBidDTO(bid))
	}
	return c.JSON(ledger)
}

type placeBidRequest struct {
	UserID uuid.UUID       `json:"user_id"`
	Price  decimal.Decimal `json:"price"`
}

func (h *Handler) PlaceBid(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	var req placeBidRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	bid, err := h.svc.PlaceBid(c.Context(), application.PlaceBidDTO{
		ItemID: itemID,
		UserID: req.UserID,
		Price:  req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return fiber.NewError(fiber.StatusNotFound, "item not found")
		case errors.Is(err, domain.ErrItemClosed):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": domain.ErrItemClosed.Error(),
			})
		case errors.Is(err, domain.ErrBidTooLow), errors.Is(err, domain.ErrInvalidPrice):
			resp := fiber.Map{"error": err.Error()}
			// The caller re-displays the current minimum, so include it.
			if view, viewErr := h.svc.GetItemView(c.Context(), itemID); viewErr == nil {
				resp["min_bid"] = view.MinBid
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
		default:
			return fiber.ErrInternalServerError
		}
	}

	return c.Status(fiber.StatusCreated).JSON(application.NewBidDTO(bid))
}

type createItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	EndTime     time.Time       `json:"end_time"`
	BusinessID  *uuid.UUID      `json:"business_id"`
}

func (h *Handler) CreateItem(c *fiber.Ctx) error {
	var req createItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	cmd := application.CreateItemDTO{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		EndTime:     req.EndTime,
	}
	if req.BusinessID != nil {
		cmd.BusinessID = uuid.NullUUID{UUID: *req.BusinessID, Valid: true}
	}

	item, err := h.svc.CreateItem(c.Context(), cmd)
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
	return c.Status(fiber.StatusCreated).JSON(application.NewItemView(item))
}

type assignBusinessRequest struct {
	BusinessID uuid.UUID `json:"business_id"`
}

func (h *Handler) AssignBusiness(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	var req assignBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.AssignItemToBusiness(c.Context(), itemID, req.BusinessID); err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return fiber.NewError(fiber.StatusNotFound, "item not found")
		case errors.Is(err, domain.ErrItemOwnedByOtherBusiness):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": domain.ErrItemOwnedByOtherBusiness.Error(),
			})
		default:
			return fiber.ErrInternalServerError
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
