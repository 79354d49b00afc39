package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/earnpro/internal/catalog"
	"github.com/GlebRadaev/earnpro/internal/domain"
	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/proof"
	"github.com/GlebRadaev/earnpro/internal/toast"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
)

// begin marks a backend call in flight. Only one runs at a time per session.
func (s *Shell) begin(st *State) error {
	if st.Busy {
		return s.busy(st)
	}
	st.Busy = true
	return nil
}

func (s *Shell) busy(st *State) error {
	s.showToast(st, "Please wait", toast.Error)
	return ErrBusy
}

func (s *Shell) Login(ctx context.Context, email, password string) error {
	err := s.call(func(st *State) error {
		if st.Page != PageLogin {
			return ErrNavigation
		}
		st.Forms.LoginEmail = email
		if strings.TrimSpace(email) == "" || password == "" {
			s.showToast(st, "Fill all fields", toast.Error)
			return ErrFieldsRequired
		}
		return s.begin(st)
	})
	if err != nil {
		return err
	}

	user, err := s.gw.SignIn(ctx, email, password)
	s.post(func(st *State) {
		st.Busy = false
		if err != nil {
			s.fail(st, err)
			return
		}
		s.onAuth(st, user)
		s.showToast(st, "Welcome back!", toast.Success)
	})
	return err
}

func (s *Shell) Signup(ctx context.Context, name, email, password string) error {
	err := s.call(func(st *State) error {
		if st.Page != PageSignup {
			return ErrNavigation
		}
		st.Forms.SignupName = name
		st.Forms.SignupEmail = email
		if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
			s.showToast(st, "Fill all fields", toast.Error)
			return ErrFieldsRequired
		}
		return s.begin(st)
	})
	if err != nil {
		return err
	}

	user, err := s.gw.SignUp(ctx, email, password)
	if err == nil {
		err = s.gw.SetDocument(ctx, domain.CollectionUsers, user.UID, map[string]any{
			"name":      strings.TrimSpace(name),
			"email":     user.Email,
			"createdAt": gateway.ServerTimestamp,
		})
	}
	s.post(func(st *State) {
		st.Busy = false
		if user != nil {
			s.onAuth(st, user)
		}
		if err != nil {
			s.fail(st, err)
			return
		}
		s.showToast(st, "Account Created!", toast.Success)
	})
	return err
}

func (s *Shell) ResetPassword(ctx context.Context, email string) error {
	err := s.call(func(st *State) error {
		if st.Page != PageForgotPassword {
			return ErrNavigation
		}
		st.Forms.ResetEmail = email
		if strings.TrimSpace(email) == "" {
			s.showToast(st, "Enter email", toast.Error)
			return ErrFieldsRequired
		}
		return s.begin(st)
	})
	if err != nil {
		return err
	}

	err = s.gw.SendPasswordReset(ctx, email)
	s.post(func(st *State) {
		st.Busy = false
		if err != nil {
			s.fail(st, err)
			return
		}
		s.showToast(st, "Reset link sent!", toast.Success)
		if st.Page == PageForgotPassword {
			st.Page = PageLogin
		}
	})
	return err
}

func (s *Shell) Logout(ctx context.Context) error {
	err := s.call(func(st *State) error {
		if st.User == nil {
			return ErrNotSignedIn
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = s.gw.SignOut(ctx)
	s.post(func(st *State) {
		if err != nil {
			s.fail(st, err)
			return
		}
		s.teardown(st)
		st.Page = PageLogin
	})
	return err
}

// Navigate moves to page along the allowed edges.
func (s *Shell) Navigate(page Page) error {
	return s.call(func(st *State) error {
		if !canNavigate(st, page) {
			return ErrNavigation
		}
		st.Page = page
		st.Modal = nil
		return nil
	})
}

func canNavigate(st *State, to Page) bool {
	if st.User != nil {
		return to.Authenticated()
	}
	switch st.Page {
	case PageLogin:
		return to == PageSignup || to == PageForgotPassword
	case PageSignup, PageForgotPassword:
		return to == PageLogin
	}
	return false
}

func signedIn(st *State) error {
	if st.User == nil {
		return ErrNotSignedIn
	}
	return nil
}

func (s *Shell) SelectCategory(tab string) error {
	sel, err := catalog.ParseSelection(tab)
	if err != nil {
		return err
	}
	return s.call(func(st *State) error {
		if err := signedIn(st); err != nil {
			return err
		}
		st.Selection = sel
		return nil
	})
}

func (s *Shell) SetSort(mode string) error {
	m, err := catalog.ParseSort(mode)
	if err != nil {
		return err
	}
	return s.call(func(st *State) error {
		if err := signedIn(st); err != nil {
			return err
		}
		st.Sort = m
		return nil
	})
}

// ToggleSave flips taskID in the saved set and reports whether it is now saved.
func (s *Shell) ToggleSave(taskID string) (bool, error) {
	var saved bool
	err := s.call(func(st *State) error {
		if err := signedIn(st); err != nil {
			return err
		}
		if _, ok := st.Saved[taskID]; ok {
			delete(st.Saved, taskID)
			return nil
		}
		st.Saved[taskID] = struct{}{}
		saved = true
		return nil
	})
	return saved, err
}

func (s *Shell) OpenTask(taskID string) error {
	return s.call(func(st *State) error {
		if err := signedIn(st); err != nil {
			return err
		}
		t, ok := st.task(taskID)
		if !ok {
			return ErrTaskNotFound
		}
		if st.blocked(taskID) {
			return ErrTaskCompleted
		}
		st.Modal = &Modal{Task: t}
		return nil
	})
}

func (s *Shell) CloseTask() error {
	return s.call(func(st *State) error {
		st.Modal = nil
		return nil
	})
}

// AttachProof stores the screenshot for the open task.
func (s *Shell) AttachProof(ctx context.Context, upload proof.Upload) error {
	var (
		taskID string
		gen    uint64
	)
	err := s.call(func(st *State) error {
		if err := signedIn(st); err != nil {
			return err
		}
		if st.Modal == nil {
			return ErrModalClosed
		}
		if st.Modal.Uploading || st.Modal.Submitting {
			return s.busy(st)
		}
		st.Modal.Uploading = true
		taskID = st.Modal.Task.ID
		gen = st.scope.gen
		upload.UID = st.User.UserID
		upload.TaskID = taskID
		return nil
	})
	if err != nil {
		return err
	}

	ref, err := s.opts.Proofs.Put(ctx, upload)
	s.post(func(st *State) {
		if st.scope == nil || st.scope.gen != gen || st.Modal == nil || st.Modal.Task.ID != taskID {
			return
		}
		st.Modal.Uploading = false
		if err != nil {
			s.fail(st, err)
			return
		}
		st.Modal.ProofRef = ref
	})
	return err
}

// SubmitTask writes a pending submission for the open task. A task with a
// pending or approved submission cannot be submitted again.
func (s *Shell) SubmitTask(ctx context.Context) error {
	var (
		fields map[string]any
		taskID string
		gen    uint64
	)
	err := s.call(func(st *State) error {
		if err := signedIn(st); err != nil {
			return err
		}
		m := st.Modal
		if m == nil {
			return ErrModalClosed
		}
		if m.Submitting || m.Uploading {
			return s.busy(st)
		}
		if m.ProofRef == "" {
			return ErrProofMissing
		}
		if st.blocked(m.Task.ID) {
			s.showToast(st, "Task already submitted", toast.Error)
			return ErrAlreadySubmitted
		}

		m.Submitting = true
		taskID = m.Task.ID
		gen = st.scope.gen
		fields = map[string]any{
			"uid":           st.User.UserID,
			"taskId":        m.Task.ID,
			"taskTitle":     m.Task.Title,
			"category":      m.Task.Category,
			"reward":        m.Task.Price,
			"screenshotUrl": m.ProofRef,
			"status":        domain.SubmissionPending,
			"submittedAt":   gateway.ServerTimestamp,
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = s.gw.CreateRecord(ctx, domain.CollectionSubmissions, fields)
	s.post(func(st *State) {
		if st.scope == nil || st.scope.gen != gen {
			return
		}
		if st.Modal != nil && st.Modal.Task.ID == taskID {
			st.Modal.Submitting = false
		}
		if err != nil {
			s.fail(st, err)
			return
		}
		st.submitted[taskID] = struct{}{}
		st.Modal = nil
		s.showToast(st, "Submitted for approval!", toast.Success)
	})
	return err
}

// RequestWithdrawal validates the wallet form against the current balance and
// creates a pending withdrawal request.
func (s *Shell) RequestWithdrawal(ctx context.Context, req withdraw.Request) error {
	var (
		fields map[string]any
		gen    uint64
	)
	err := s.call(func(st *State) error {
		if err := signedIn(st); err != nil {
			return err
		}
		st.Forms.WithdrawMethod = req.Method
		st.Forms.WithdrawUPI = req.UPIID
		st.Forms.WithdrawAmount = req.Amount

		amount, err := withdraw.Validate(req, s.opts.Limits, st.Stats.WithdrawableAmount)
		if err != nil {
			s.showToast(st, s.withdrawMessage(err), toast.Error)
			return err
		}
		if err := s.begin(st); err != nil {
			return err
		}

		gen = st.scope.gen
		fields = map[string]any{
			"uid":         st.User.UserID,
			"amount":      amount,
			"method":      req.Method,
			"upiId":       strings.TrimSpace(req.UPIID),
			"status":      domain.WithdrawalPending,
			"requestedAt": gateway.ServerTimestamp,
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = s.gw.CreateRecord(ctx, domain.CollectionWithdrawals, fields)
	s.post(func(st *State) {
		if st.scope == nil || st.scope.gen != gen {
			return
		}
		st.Busy = false
		if err != nil {
			s.fail(st, err)
			return
		}
		st.Forms.WithdrawAmount = ""
		s.showToast(st, "Withdrawal Requested!", toast.Success)
	})
	return err
}

func (s *Shell) withdrawMessage(err error) string {
	switch {
	case errors.Is(err, withdraw.ErrSelectionIncomplete):
		return "Select Method and Enter UPI ID"
	case errors.Is(err, withdraw.ErrNotInteger):
		return "Enter whole numbers only (e.g. 25, 50)"
	case errors.Is(err, withdraw.ErrOutOfBounds):
		return fmt.Sprintf("Limit: %s%d - %s%d", s.opts.Currency, s.opts.Limits.Min, s.opts.Currency, s.opts.Limits.Max)
	case errors.Is(err, withdraw.ErrInsufficientBalance):
		return "Insufficient balance"
	}
	return err.Error()
}

func (s *Shell) DismissToast() error {
	return s.call(func(st *State) error {
		st.toast.Dismiss()
		return nil
	})
}
