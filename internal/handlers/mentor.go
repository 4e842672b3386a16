package handlers

import (
	"errors"
	"fmt"

	"finmentor/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const (
	// moodStressed is the only mood value that changes the advice text.
	// The comparison is exact and case-sensitive.
	moodStressed = "stressed"

	adviceBase     = "Keep up the good work! Consider investing extra funds if you're under budget."
	adviceStressed = " Take a deep breath before making new purchases."
)

// MoodResponse echoes a mood update.
type MoodResponse struct {
	UserID int64  `json:"user_id"`
	Mood   string `json:"mood"`
}

// AdviceResponse carries the mentor's summary line and advice text.
type AdviceResponse struct {
	Summary string `json:"summary"`
	Advice  string `json:"advice"`
}

// UpdateMood overwrites the user's mood. Any string is accepted; there
// is no enumerated set of moods.
func (h *Handlers) UpdateMood(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}

	mood := c.Query("mood")
	if mood == "" {
		mood = c.FormValue("mood")
	}

	s, err := h.db.Session(c.Context())
	if err != nil {
		return storageError(c, err)
	}
	defer s.Close()

	if _, err := s.GetUserByID(id); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return userNotFound(c)
		}
		return storageError(c, err)
	}

	if err := s.UpdateUserMood(id, mood); err != nil {
		return storageError(c, err)
	}

	return c.JSON(MoodResponse{UserID: id, Mood: mood})
}

// buildAdvice formats the monthly summary line and picks the advice
// text for the given mood.
func buildAdvice(name string, totalSpent float64, mood string) (summary, advice string) {
	summary = fmt.Sprintf("%s has spent %.2f this month.", name, totalSpent)
	advice = adviceBase
	if mood == moodStressed {
		advice += adviceStressed
	}
	return summary, advice
}

// MentorAdvice returns a spending summary line and a canned piece of
// advice for an existing user.
func (h *Handlers) MentorAdvice(c *fiber.Ctx) error {
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

	total, _ := summarize(transactions)
	summary, advice := buildAdvice(user.Name, total, user.Mood)

	return c.JSON(AdviceResponse{Summary: summary, Advice: advice})
}
