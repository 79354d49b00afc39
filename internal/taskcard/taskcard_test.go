package taskcard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/earnpro/internal/domain"
)

func TestNew(t *testing.T) {
	task := domain.Task{
		ID:       "t1",
		Title:    "Install Foo",
		Category: domain.CategoryInstall,
		Price:    decimal.NewFromInt(25),
	}

	tests := []struct {
		name      string
		status    domain.SubmissionStatus
		saved     bool
		completed bool
		badge     string
	}{
		{name: "No submission", completed: false},
		{name: "Pending", status: domain.SubmissionPending, completed: true, badge: "pending"},
		{name: "Approved and saved", status: domain.SubmissionApproved, saved: true, completed: true, badge: "approved"},
		{name: "Rejected stays clickable", status: domain.SubmissionRejected, completed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := New(task, tt.status, tt.saved, "₹")

			assert.Equal(t, "t1", card.ID)
			assert.Equal(t, "₹25", card.PriceLabel)
			assert.Equal(t, tt.completed, card.Completed)
			assert.Equal(t, !tt.completed, card.Clickable)
			assert.Equal(t, tt.badge, card.Badge)
			assert.Equal(t, tt.saved, card.Saved)
		})
	}
}

func TestBuild(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t1", Price: decimal.NewFromInt(10)},
		{ID: "t2", Price: decimal.NewFromInt(20)},
	}
	subs := []domain.Submission{{TaskID: "t2", Status: domain.SubmissionApproved}}
	saved := map[string]struct{}{"t1": {}}

	cards := Build(tasks, subs, nil, saved, "$")

	require.Len(t, cards, 2)
	assert.True(t, cards[0].Saved)
	assert.False(t, cards[0].Completed)
	assert.Equal(t, "$10", cards[0].PriceLabel)
	assert.True(t, cards[1].Completed)
	assert.Equal(t, domain.SubmissionApproved, cards[1].Status)
}

func TestBuildLocallySubmitted(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t1", Price: decimal.NewFromInt(10)},
		{ID: "t2", Price: decimal.NewFromInt(20)},
		{ID: "t3", Price: decimal.NewFromInt(30)},
	}
	subs := []domain.Submission{
		{TaskID: "t2", Status: domain.SubmissionRejected},
		{TaskID: "t3", Status: domain.SubmissionApproved},
	}
	submitted := map[string]struct{}{"t1": {}, "t2": {}, "t3": {}}

	cards := Build(tasks, subs, submitted, nil, "$")

	require.Len(t, cards, 3)
	for _, c := range cards {
		assert.True(t, c.Completed, c.ID)
		assert.False(t, c.Clickable, c.ID)
	}
	assert.Equal(t, domain.SubmissionPending, cards[0].Status)
	assert.Equal(t, domain.SubmissionPending, cards[1].Status)
	assert.Equal(t, domain.SubmissionApproved, cards[2].Status)
}
