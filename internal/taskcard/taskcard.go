// Package taskcard builds the view model of one task tile.
package taskcard

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/earnpro/internal/domain"
)

type Card struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Category    domain.Category         `json:"category"`
	Description string                  `json:"description"`
	ImageURL    string                  `json:"imageUrl"`
	ActionText  string                  `json:"actionText"`
	Price       decimal.Decimal         `json:"price"`
	PriceLabel  string                  `json:"priceLabel"`
	Status      domain.SubmissionStatus `json:"status,omitempty"`
	Badge       string                  `json:"badge,omitempty"`
	Completed   bool                    `json:"completed"`
	Clickable   bool                    `json:"clickable"`
	Saved       bool                    `json:"saved"`
}

// New renders task. status is empty when the user has no submission for it.
func New(task domain.Task, status domain.SubmissionStatus, saved bool, currency string) Card {
	completed := status.Blocks()
	card := Card{
		ID:          task.ID,
		Title:       task.Title,
		Category:    task.Category,
		Description: task.Description,
		ImageURL:    task.ImageURL,
		ActionText:  task.ActionText,
		Price:       task.Price,
		PriceLabel:  currency + task.Price.String(),
		Status:      status,
		Completed:   completed,
		Clickable:   !completed,
		Saved:       saved,
	}
	if completed {
		card.Badge = string(status)
	}
	return card
}

// Build renders every task with its submission status and saved flag. Tasks
// in submitted count as pending until a blocking record arrives for them.
func Build(tasks []domain.Task, subs []domain.Submission, submitted, saved map[string]struct{}, currency string) []Card {
	cards := make([]Card, 0, len(tasks))
	for _, t := range tasks {
		var status domain.SubmissionStatus
		if sub, ok := domain.SubmissionFor(subs, t.ID); ok {
			status = sub.Status
		}
		if _, ok := submitted[t.ID]; ok && !status.Blocks() {
			status = domain.SubmissionPending
		}
		_, isSaved := saved[t.ID]
		cards = append(cards, New(t, status, isSaved, currency))
	}
	return cards
}
