// Package shell runs the application state of one client session. A single
// reducer goroutine owns State; user actions and backend snapshots reach it
// as closures posted to its queue.
package shell

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/proof"
	"github.com/GlebRadaev/earnpro/internal/toast"
	"github.com/GlebRadaev/earnpro/internal/withdraw"
)

var (
	ErrClosed           = errors.New("session closed")
	ErrNavigation       = errors.New("navigation not allowed from the current page")
	ErrNotSignedIn      = errors.New("not signed in")
	ErrFieldsRequired   = errors.New("required fields are empty")
	ErrBusy             = errors.New("another request is in progress")
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskCompleted    = errors.New("task already completed")
	ErrAlreadySubmitted = errors.New("task already submitted")
	ErrModalClosed      = errors.New("no task is open")
	ErrProofMissing     = errors.New("attach a proof screenshot first")
)

const queueSize = 64

type Options struct {
	Currency   string
	Limits     withdraw.Limits
	SupportURL string
	ToastTTL   time.Duration
	Proofs     proof.Store
}

type Shell struct {
	gw   gateway.Gateway
	opts Options

	events chan func(*State)
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	// touched only by the reducer
	state State
	gen   uint64
}

// New connects a shell to gw and starts its reducer. The first auth
// notification moves it out of the loading page.
func New(ctx context.Context, gw gateway.Gateway, opts Options) (*Shell, error) {
	if opts.Proofs == nil {
		opts.Proofs = proof.NewPlaceholderStore(0)
	}
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = 3 * time.Second
	}

	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &Shell{
		gw:     gw,
		opts:   opts,
		events: make(chan func(*State), queueSize),
		ctx:    sctx,
		cancel: cancel,
		done:   make(chan struct{}),
		state:  newState(),
	}

	authFeed, err := gw.SubscribeAuthState(sctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe auth state: %w", err)
	}

	go s.run()
	go func() {
		defer authFeed.Cancel()
		for {
			select {
			case <-sctx.Done():
				return
			case <-authFeed.Done():
				return
			case u := <-authFeed.C():
				s.post(func(st *State) { s.onAuth(st, u) })
			}
		}
	}()
	return s, nil
}

func (s *Shell) run() {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			s.teardown(&s.state)
			return
		case fn := <-s.events:
			fn(&s.state)
		}
	}
}

// Close ends every subscription and stops the reducer.
func (s *Shell) Close() {
	s.once.Do(s.cancel)
	<-s.done
}

func (s *Shell) Done() <-chan struct{} {
	return s.done
}

func (s *Shell) post(fn func(*State)) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.events <- fn:
		return true
	}
}

// call runs fn on the reducer and waits for its result.
func (s *Shell) call(fn func(st *State) error) error {
	errc := make(chan error, 1)
	if !s.post(func(st *State) { errc <- fn(st) }) {
		return ErrClosed
	}
	select {
	case err := <-errc:
		return err
	case <-s.done:
		return ErrClosed
	}
}

func (s *Shell) showToast(st *State, message string, kind toast.Kind) {
	seq := st.toast.Show(message, kind)
	time.AfterFunc(s.opts.ToastTTL, func() {
		s.post(func(st *State) { st.toast.Expire(seq) })
	})
}

func (s *Shell) fail(st *State, err error) {
	zap.L().Debug("action failed", zap.Error(err))
	s.showToast(st, err.Error(), toast.Error)
}
