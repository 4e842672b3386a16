package handlers

import (
	"errors"
	"log"
	"strconv"

	"finmentor/internal/models"
	"finmentor/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	db *storage.DB
}

// NewHandlers creates a new Handlers instance around the store factory.
func NewHandlers(db *storage.DB) *Handlers {
	return &Handlers{db: db}
}

// RegisterRoutes wires all endpoints onto the app.
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	app.Post("/users/", h.RegisterUser)
	app.Get("/users/:user_id", h.GetUser)
	app.Post("/transactions/", h.RecordTransaction)
	app.Get("/users/:user_id/transactions", h.ListTransactions)
	app.Get("/users/:user_id/summary", h.UserSummary)
	app.Post("/users/:user_id/mood", h.UpdateMood)
	app.Get("/mentor_advice/:user_id", h.MentorAdvice)
}

// CreateUserRequest is the payload for registering a user. The optional
// fields only take their defaults when absent from the body.
type CreateUserRequest struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	MonthlyIncome float64 `json:"monthly_income"`
	FinancialGoal *string `json:"financial_goal"`
	Mood          *string `json:"mood"`
}

// CreateTransactionRequest is the payload for recording a transaction.
type CreateTransactionRequest struct {
	UserID   int64   `json:"user_id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

func userIDParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("user_id"), 10, 64)
}

func invalidUserID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
}

func userNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
}

func storageError(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

// RegisterUser creates a new user, rejecting already registered emails.
func (h *Handlers) RegisterUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s, err := h.db.Session(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	defer s.Close()

	if _, err := s.GetUserByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already registered"})
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return storageError(c, err)
	}

	user := models.User{
		Email:         req.Email,
		Name:          req.Name,
		MonthlyIncome: req.MonthlyIncome,
		Mood:          "neutral",
	}
	if req.FinancialGoal != nil {
		user.FinancialGoal = *req.FinancialGoal
	}
	if req.Mood != nil {
		user.Mood = *req.Mood
	}

	if err := s.CreateUser(&user); err != nil {
		return storageError(c, err)
	}

	return c.JSON(user)
}

// GetUser returns the user with the given ID.
func (h *Handlers) GetUser(c *fiber.Ctx) error {
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

	return c.JSON(user)
}

// RecordTransaction stores a new transaction for an existing user.
// Amount sign, category vocabulary, and date format are not validated.
func (h *Handlers) RecordTransaction(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s, err := h.db.Session(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	defer s.Close()

	if _, err := s.GetUserByID(req.UserID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return userNotFound(c)
		}
		return storageError(c, err)
	}

	transaction := models.Transaction{
		UserID:   req.UserID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
	}
	if err := s.CreateTransaction(&transaction); err != nil {
		return storageError(c, err)
	}

	return c.JSON(transaction)
}

// ListTransactions returns all transactions for a user in creation
// order. Unlike the other per-user reads, an unknown user is not an
// error here; it yields an empty list.
func (h *Handlers) ListTransactions(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}

	s, err := h.db.Session(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	defer s.Close()

	transactions, err := s.ListTransactions(id)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(transactions)
}
