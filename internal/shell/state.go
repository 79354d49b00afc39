package shell

import (
	"github.com/GlebRadaev/earnpro/internal/catalog"
	"github.com/GlebRadaev/earnpro/internal/domain"
	"github.com/GlebRadaev/earnpro/internal/stats"
	"github.com/GlebRadaev/earnpro/internal/toast"
)

type Page string

const (
	PageLoading        Page = "loading"
	PageLogin          Page = "login"
	PageSignup         Page = "signup"
	PageForgotPassword Page = "forgot-password"
	PageHome           Page = "home"
	PageHistory        Page = "history"
	PageWallet         Page = "wallet"
	PageProfile        Page = "profile"
)

// Authenticated reports whether p is one of the pages reachable after sign in.
func (p Page) Authenticated() bool {
	switch p {
	case PageHome, PageHistory, PageWallet, PageProfile:
		return true
	}
	return false
}

// Forms holds what the user typed. Passwords are never kept.
type Forms struct {
	LoginEmail     string
	SignupName     string
	SignupEmail    string
	ResetEmail     string
	WithdrawMethod domain.PaymentMethod
	WithdrawUPI    string
	WithdrawAmount string
}

// Modal is the open task submission dialog.
type Modal struct {
	Task       domain.Task
	ProofRef   string
	Uploading  bool
	Submitting bool
}

// State is owned by the reducer goroutine of a Shell.
type State struct {
	Page    Page
	Loading bool
	Busy    bool
	User    *domain.UserProfile

	Tasks       []domain.Task
	Submissions []domain.Submission
	Withdrawals []domain.Withdrawal
	Messages    []domain.UserMessage
	Stats       stats.Stats

	Selection catalog.Selection
	Sort      catalog.SortMode
	Saved     map[string]struct{}

	Modal *Modal
	Forms Forms

	toast toast.Notifier
	scope *scope

	// tasks submitted in this scope that no snapshot has confirmed yet
	submitted map[string]struct{}
}

func newState() State {
	return State{
		Page:      PageLoading,
		Loading:   true,
		Selection: catalog.Selection{Category: domain.CategoryAll},
		Sort:      catalog.SortNone,
		Saved:     make(map[string]struct{}),
		submitted: make(map[string]struct{}),
		Stats:     stats.Compute(nil),
	}
}

// blocked reports whether taskID already has a pending or approved submission.
func (st *State) blocked(taskID string) bool {
	if _, ok := st.submitted[taskID]; ok {
		return true
	}
	sub, ok := domain.SubmissionFor(st.Submissions, taskID)
	return ok && sub.Status.Blocks()
}

func (st *State) task(id string) (domain.Task, bool) {
	for _, t := range st.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// reset drops everything that belongs to the signed-in user.
func (st *State) reset() {
	st.User = nil
	st.Tasks = nil
	st.Submissions = nil
	st.Withdrawals = nil
	st.Messages = nil
	st.Stats = stats.Compute(nil)
	st.Saved = make(map[string]struct{})
	st.submitted = make(map[string]struct{})
	st.Modal = nil
	st.Busy = false
	st.Forms.WithdrawMethod = ""
	st.Forms.WithdrawUPI = ""
	st.Forms.WithdrawAmount = ""
}
