package domain

import (
	"time"

	"github.com/bidworks/marketengine/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// ItemStatus is the stored lifecycle state of an item. Won/lost are not
// statuses: they are per-user predicates derived from the closed state and
// the high bidder.
type ItemStatus int

const (
	StatusOpen ItemStatus = iota
	StatusClosed
)

// Label maps the stored status to its display string. The switch is kept
// exhaustive over the enum; the fallback only fires on corrupt data.
func (s ItemStatus) Label() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	}
	return "unknown"
}

func (s ItemStatus) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

// minBidIncrement is the flat one-unit step added to the high bid. It is a
// deliberate business rule, not a proportional increment.
var minBidIncrement = decimal.NewFromInt(1)

// Item is the auction aggregate: the listing itself plus its bid ledger.
// Price is the starting price, not the current one; the current price is
// always derived from the ledger.
type Item struct {
	ID          uuid.UUID
	BusinessID  uuid.NullUUID
	Name        string
	Description string
	Price       decimal.Decimal
	EndTime     time.Time
	Status      ItemStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Ledger entries for this item, oldest first.
	Bids []*Bid
}

// NewItem validates and builds an open item. Each failed check is reported
// as a ValidationError naming the field.
func NewItem(id uuid.UUID, name, description string, price decimal.Decimal, endTime time.Time, now time.Time) (*Item, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if description == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !price.IsPositive() {
		return nil, &ValidationError{Field: "price", Reason: "must be greater than zero"}
	}
	if !endTime.After(now) {
		return nil, &ValidationError{Field: "end_time", Reason: "must be in the future"}
	}
	return &Item{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		EndTime:     endTime,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
		Bids:        []*Bid{},
	}, nil
}

// HighBid returns the maximum ledger price, or 0.00 when no bids exist.
// An empty ledger is an expected state, not an error.
func (i *Item) HighBid() decimal.Decimal {
	high := decimal.Zero
	for _, b := range i.Bids {
		if b.Price.GreaterThan(high) {
			high = b.Price
		}
	}
	return high
}

// HighBidder returns the user holding the high bid. When several bids share
// the maximum price the earliest one wins; that should not happen under the
// strictly increasing MinBid rule but is handled anyway. The second return
// is false when the ledger is empty.
func (i *Item) HighBidder() (uuid.UUID, bool) {
	var winner *Bid
	for _, b := range i.Bids {
		if winner == nil {
			winner = b
			continue
		}
		if b.Price.GreaterThan(winner.Price) {
			winner = b
		} else if b.Price.Equal(winner.Price) && b.CreatedAt.Before(winner.CreatedAt) {
			winner = b
		}
	}
	if winner == nil {
		return uuid.Nil, false
	}
	return winner.UserID, true
}

// MinBid is the smallest acceptable next bid: the starting price while the
// ledger is empty, then high bid plus one full unit.
func (i *Item) MinBid() decimal.Decimal {
	if !i.HasBids() {
		return i.Price
	}
	return i.HighBid().Add(minBidIncrement)
}

func (i *Item) HasBids() bool {
	return len(i.Bids) > 0
}

// RefreshOwnStatus closes the item when its end time has elapsed. It is
// idempotent and never reopens a closed item. Returns true when the status
// actually changed so callers know to persist it.
func (i *Item) RefreshOwnStatus(now time.Time) bool {
	if i.Status != StatusOpen {
		return false
	}
	if !i.EndTime.Before(now) {
		return false
	}
	i.Status = StatusClosed
	i.UpdatedAt = now
	log.Info("Item auction elapsed, closing",
		zap.String("itemID", i.ID.String()),
		zap.Time("endTime", i.EndTime),
	)
	return true
}

// RegisterBid validates and appends a bid to the ledger. The item's status
// is refreshed against now first, so a bid arriving after the end time is
// rejected even if the sweep has not run yet. Callers must hold whatever
// lock serializes concurrent placements for this item.
func (i *Item) RegisterBid(userID uuid.UUID, price decimal.Decimal, now time.Time) (*Bid, error) {
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	i.RefreshOwnStatus(now)
	if i.Status != StatusOpen {
		log.Warn("Bid rejected: item not open",
			zap.String("itemID", i.ID.String()),
			zap.String("status", i.Status.Label()),
			zap.String("userID", userID.String()),
			zap.String("price", price.String()),
		)
		return nil, ErrItemClosed
	}

	if price.LessThan(i.MinBid()) {
		log.Warn("Bid rejected: price below minimum",
			zap.String("itemID", i.ID.String()),
			zap.String("price", price.String()),
			zap.String("minBid", i.MinBid().String()),
			zap.String("userID", userID.String()),
		)
		return nil, ErrBidTooLow
	}

	bid := NewBid(uuid.New(), i.ID, userID, price, now)
	i.Bids = append(i.Bids, bid)
	i.UpdatedAt = now

	log.Info("Bid placed",
		zap.String("itemID", i.ID.String()),
		zap.String("bidID", bid.ID.String()),
		zap.String("userID", userID.String()),
		zap.String("price", price.String()),
	)
	return bid, nil
}

// AssignToBusiness sets the owning business. An item that already belongs
// to a different business cannot be reassigned.
func (i *Item) AssignToBusiness(businessID uuid.UUID) error {
	if i.BusinessID.Valid && i.BusinessID.UUID != businessID {
		return ErrItemOwnedByOtherBusiness
	}
	i.BusinessID = uuid.NullUUID{UUID: businessID, Valid: true}
	return nil
}
