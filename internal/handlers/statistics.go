package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"finmentor/internal/models"
	"finmentor/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// CategoryBreakdown accumulates per-category totals while remembering
// the order in which categories were first seen, so the serialized
// object lists them in that order rather than sorted by key.
type CategoryBreakdown struct {
	order  []string
	totals map[string]float64
}

// NewCategoryBreakdown creates an empty breakdown.
func NewCategoryBreakdown() *CategoryBreakdown {
	return &CategoryBreakdown{totals: make(map[string]float64)}
}

// Add accumulates amount under category.
func (b *CategoryBreakdown) Add(category string, amount float64) {
	if _, ok := b.totals[category]; !ok {
		b.order = append(b.order, category)
	}
	b.totals[category] += amount
}

// Get returns the accumulated total for category.
func (b *CategoryBreakdown) Get(category string) float64 {
	return b.totals[category]
}

// Len returns the number of distinct categories seen.
func (b *CategoryBreakdown) Len() int {
	return len(b.order)
}

// Categories returns the category names in first-seen order.
func (b *CategoryBreakdown) Categories() []string {
	return b.order
}

// MarshalJSON emits a JSON object whose keys appear in first-seen order.
func (b *CategoryBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(b.totals[category])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SummaryResponse is the spending overview for one user.
type SummaryResponse struct {
	User              string             `json:"user"`
	FinancialGoal     string             `json:"financial_goal"`
	TotalSpent        float64            `json:"total_spent"`
	CategoryBreakdown *CategoryBreakdown `json:"category_breakdown"`
}

// summarize sums amounts with their signs intact and groups them by
// category in list order. Income and expense entries cancel against
// each other; callers are expected to know that.
func summarize(transactions []models.Transaction) (float64, *CategoryBreakdown) {
	breakdown := NewCategoryBreakdown()
	var total float64
	for _, t := range transactions {
		total += t.Amount
		breakdown.Add(t.Category, t.Amount)
	}
	return total, breakdown
}

// UserSummary returns the total spent and the per-category breakdown
// for an existing user.
func (h *Handlers) UserSummary(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}

	s, err := h.db.Session(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	defer s.Close()

	user, err := s.GetUserByID(id)
	if errors.Is(err, storage.ErrUserNotFound) {
		return userNotFound(c)
	}
	if err != nil {
		return storageError(c, err)
	}

	transactions, err := s.ListTransactions(id)
	if err != nil {
		return storageError(c, err)
	}

	total, breakdown := summarize(transactions)

	return c.JSON(SummaryResponse{
		User:              user.Name,
		FinancialGoal:     user.FinancialGoal,
		TotalSpent:        total,
		CategoryBreakdown: breakdown,
	})
}
