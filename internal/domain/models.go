package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Backend collection names.
const (
	CollectionTasks       = "tasks"
	CollectionSubmissions = "task_submissions"
	CollectionWithdrawals = "withdrawal_requests"
	CollectionUsers       = "users"
	CollectionMessages    = "user_messages"
)

// TaskStatusActive marks tasks offered to users.
const TaskStatusActive = "active"

// PlaceholderName is shown until the users document arrives.
const PlaceholderName = "Loading..."

type Category string

const (
	CategoryAll     Category = "All"
	CategoryInstall Category = "Install"
	CategoryGames   Category = "Games"
	CategorySignup  Category = "Signup"
	CategoryOthers  Category = "Others"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Blocks reports whether a submission in this status prevents the task from
// being submitted again.
func (s SubmissionStatus) Blocks() bool {
	return s == SubmissionPending || s == SubmissionApproved
}

type WithdrawalStatus string

const (
	WithdrawalPending WithdrawalStatus = "pending"
	WithdrawalSuccess WithdrawalStatus = "success"
	WithdrawalFailed  WithdrawalStatus = "failed"
)

type PaymentMethod string

const (
	MethodPaytm     PaymentMethod = "Paytm"
	MethodPhonePe   PaymentMethod = "PhonePe"
	MethodGooglePay PaymentMethod = "Google Pay"
)

var PaymentMethods = []PaymentMethod{MethodPaytm, MethodPhonePe, MethodGooglePay}

func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

type Task struct {
	ID          string          `json:"-"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	ActionText  string          `json:"actionText"`
	Status      string          `json:"status"`
}

type Submission struct {
	ID            string           `json:"-"`
	UID           string           `json:"uid"`
	TaskID        string           `json:"taskId"`
	TaskTitle     string           `json:"taskTitle"`
	Category      Category         `json:"category"`
	Reward        decimal.Decimal  `json:"reward"`
	ScreenshotURL string           `json:"screenshotUrl"`
	Status        SubmissionStatus `json:"status"`
	SubmittedAt   time.Time        `json:"submittedAt"`
}

type Withdrawal struct {
	ID          string           `json:"-"`
	UID         string           `json:"uid"`
	Amount      int64            `json:"amount"`
	UPIID       string           `json:"upiId"`
	Method      PaymentMethod    `json:"method"`
	Status      WithdrawalStatus `json:"status"`
	RequestedAt time.Time        `json:"requestedAt"`
}

type UserProfile struct {
	UserID string `json:"-"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type UserMessage struct {
	ID        string    `json:"-"`
	UID       string    `json:"uid"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubmissionFor picks the submission shown for a task. A blocking submission
// wins over a rejected one; otherwise the newest is returned.
func SubmissionFor(subs []Submission, taskID string) (Submission, bool) {
	var (
		found Submission
		ok    bool
	)
	for _, s := range subs {
		if s.TaskID != taskID {
			continue
		}
		switch {
		case !ok:
			found, ok = s, true
		case s.Status.Blocks() != found.Status.Blocks():
			if s.Status.Blocks() {
				found = s
			}
		case s.SubmittedAt.After(found.SubmittedAt):
			found = s
		}
	}
	return found, ok
}
