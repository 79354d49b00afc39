package shell

import (
	"time"

	"github.com/GlebRadaev/earnpro/internal/catalog"
	"github.com/GlebRadaev/earnpro/internal/domain"
	"github.com/GlebRadaev/earnpro/internal/stats"
	"github.com/GlebRadaev/earnpro/internal/taskcard"
	"github.com/GlebRadaev/earnpro/internal/toast"
)

const (
	recentlyLabel = "Recently"
	dateLayout    = "2 Jan 2006"
	messageLimit  = 3
)

type View struct {
	Page        Page             `json:"page"`
	Loading     bool             `json:"loading"`
	Busy        bool             `json:"busy"`
	User        *UserView        `json:"user"`
	Toast       toast.Toast      `json:"toast"`
	Stats       stats.Stats      `json:"stats"`
	Tabs        []string         `json:"tabs"`
	ActiveTab   string           `json:"activeTab"`
	Sort        catalog.SortMode `json:"sort"`
	Tasks       []taskcard.Card  `json:"tasks"`
	Withdrawals []WithdrawalView `json:"withdrawals"`
	PayoutTotal int64            `json:"payoutTotal"`
	Messages    []MessageView    `json:"messages"`
	Modal       *ModalView       `json:"modal"`
	Forms       FormsView        `json:"forms"`
	Config      ConfigView       `json:"config"`
}

type UserView struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type WithdrawalView struct {
	ID     string                  `json:"id"`
	Amount int64                   `json:"amount"`
	UPIID  string                  `json:"upiId"`
	Method domain.PaymentMethod    `json:"method"`
	Status domain.WithdrawalStatus `json:"status"`
	Date   string                  `json:"date"`
}

type MessageView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type ModalView struct {
	Task          taskcard.Card `json:"task"`
	ProofAttached bool          `json:"proofAttached"`
	Uploading     bool          `json:"uploading"`
	Submitting    bool          `json:"submitting"`
	CanSubmit     bool          `json:"canSubmit"`
}

type FormsView struct {
	LoginEmail     string               `json:"loginEmail"`
	SignupName     string               `json:"signupName"`
	SignupEmail    string               `json:"signupEmail"`
	ResetEmail     string               `json:"resetEmail"`
	WithdrawMethod domain.PaymentMethod `json:"withdrawMethod"`
	WithdrawUPI    string               `json:"withdrawUpi"`
	WithdrawAmount string               `json:"withdrawAmount"`
}

type ConfigView struct {
	Currency       string                 `json:"currency"`
	MinWithdrawal  int64                  `json:"minWithdrawal"`
	MaxWithdrawal  int64                  `json:"maxWithdrawal"`
	SupportURL     string                 `json:"supportUrl"`
	PaymentMethods []domain.PaymentMethod `json:"paymentMethods"`
}

// View returns a copy of the session's read model.
func (s *Shell) View() (View, error) {
	var v View
	err := s.call(func(st *State) error {
		v = s.render(st)
		return nil
	})
	return v, err
}

func dateLabel(t time.Time) string {
	if t.IsZero() {
		return recentlyLabel
	}
	return t.Format(dateLayout)
}

func (s *Shell) render(st *State) View {
	v := View{
		Page:        st.Page,
		Loading:     st.Loading,
		Busy:        st.Busy,
		Toast:       st.toast.Current(),
		Stats:       st.Stats,
		Tabs:        catalog.Tabs,
		ActiveTab:   st.Selection.Tab(),
		Sort:        st.Sort,
		Tasks:       []taskcard.Card{},
		Withdrawals: make([]WithdrawalView, 0, len(st.Withdrawals)),
		Messages:    []MessageView{},
		Forms: FormsView{
			LoginEmail:     st.Forms.LoginEmail,
			SignupName:     st.Forms.SignupName,
			SignupEmail:    st.Forms.SignupEmail,
			ResetEmail:     st.Forms.ResetEmail,
			WithdrawMethod: st.Forms.WithdrawMethod,
			WithdrawUPI:    st.Forms.WithdrawUPI,
			WithdrawAmount: st.Forms.WithdrawAmount,
		},
		Config: ConfigView{
			Currency:       s.opts.Currency,
			MinWithdrawal:  s.opts.Limits.Min,
			MaxWithdrawal:  s.opts.Limits.Max,
			SupportURL:     s.opts.SupportURL,
			PaymentMethods: domain.PaymentMethods,
		},
	}
	if st.User == nil {
		return v
	}

	v.User = &UserView{UserID: st.User.UserID, Name: st.User.Name, Email: st.User.Email}
	visible := catalog.Apply(st.Tasks, st.Selection, st.Sort, st.Saved)
	v.Tasks = taskcard.Build(visible, st.Submissions, st.submitted, st.Saved, s.opts.Currency)
	v.PayoutTotal = stats.PayoutTotal(st.Withdrawals)
	for _, w := range st.Withdrawals {
		v.Withdrawals = append(v.Withdrawals, WithdrawalView{
			ID:     w.ID,
			Amount: w.Amount,
			UPIID:  w.UPIID,
			Method: w.Method,
			Status: w.Status,
			Date:   dateLabel(w.RequestedAt),
		})
	}
	for i, m := range st.Messages {
		if i == messageLimit {
			break
		}
		v.Messages = append(v.Messages, MessageView{ID: m.ID, Text: m.Text, Date: dateLabel(m.CreatedAt)})
	}

	if m := st.Modal; m != nil {
		_, saved := st.Saved[m.Task.ID]
		v.Modal = &ModalView{
			Task:          taskcard.New(m.Task, "", saved, s.opts.Currency),
			ProofAttached: m.ProofRef != "",
			Uploading:     m.Uploading,
			Submitting:    m.Submitting,
			CanSubmit:     m.ProofRef != "" && !m.Uploading && !m.Submitting && !st.blocked(m.Task.ID),
		}
	}
	return v
}
