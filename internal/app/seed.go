package app

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/earnpro/internal/domain"
	"github.com/GlebRadaev/earnpro/internal/gateway/memgateway"
)

var demoTasks = []domain.Task{
	{
		ID:          "demo-install-1",
		Title:       "Install Groww & open once",
		Price:       decimal.NewFromInt(25),
		Category:    domain.CategoryInstall,
		Description: "Install the app from Play Store, open it and keep it for 2 days.",
		ImageURL:    "https://picsum.photos/seed/groww/96",
		ActionText:  "Install Now",
		Status:      domain.TaskStatusActive,
	},
	{
		ID:          "demo-games-1",
		Title:       "Reach level 10 in Ludo King",
		Price:       decimal.NewFromInt(80),
		Category:    domain.CategoryGames,
		Description: "Play until level 10 and upload a screenshot of the level screen.",
		ImageURL:    "https://picsum.photos/seed/ludo/96",
		ActionText:  "Play Now",
		Status:      domain.TaskStatusActive,
	},
	{
		ID:          "demo-signup-1",
		Title:       "Create a Zupee account",
		Price:       decimal.RequireFromString("12.5"),
		Category:    domain.CategorySignup,
		Description: "Sign up with a new mobile number and verify OTP.",
		ImageURL:    "https://picsum.photos/seed/zupee/96",
		ActionText:  "Sign Up",
		Status:      domain.TaskStatusActive,
	},
	{
		ID:          "demo-others-1",
		Title:       "Rate us on Play Store",
		Price:       decimal.NewFromInt(5),
		Category:    domain.CategoryOthers,
		Description: "Leave an honest review and upload a screenshot.",
		ImageURL:    "https://picsum.photos/seed/rate/96",
		ActionText:  "Rate",
		Status:      domain.TaskStatusActive,
	},
	{
		ID:          "demo-paused-1",
		Title:       "Expired campaign",
		Price:       decimal.NewFromInt(100),
		Category:    domain.CategoryInstall,
		Description: "No longer available.",
		ActionText:  "Install Now",
		Status:      "paused",
	},
}

func seedDemo(b *memgateway.Backend) error {
	for _, t := range demoTasks {
		if err := b.Put(domain.CollectionTasks, t.ID, t); err != nil {
			return err
		}
	}
	return nil
}
