package shell

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/domain"
	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/stats"
)

// scope owns the live subscriptions of one signed-in user. Events carry the
// generation they were started in and are dropped once it is stale.
type scope struct {
	gen    uint64
	uid    string
	cancel context.CancelFunc
}

func (s *Shell) onAuth(st *State, u *gateway.AuthUser) {
	st.Loading = false
	if u == nil {
		s.teardown(st)
		st.Page = PageLogin
		return
	}
	if st.scope != nil && st.scope.uid == u.UID {
		return
	}

	s.teardown(st)
	st.User = &domain.UserProfile{UserID: u.UID, Name: domain.PlaceholderName, Email: u.Email}
	st.Page = PageHome
	s.startScope(st, u.UID)
}

func (s *Shell) startScope(st *State, uid string) {
	s.gen++
	ctx, cancel := context.WithCancel(s.ctx)
	st.scope = &scope{gen: s.gen, uid: uid, cancel: cancel}
	gen := s.gen

	byUser := []gateway.Filter{{Field: "uid", Value: uid}}
	subscribeCollection(s, ctx, gen, gateway.Query{
		Collection: domain.CollectionTasks,
		Where:      []gateway.Filter{{Field: "status", Value: domain.TaskStatusActive}},
	}, applyTasks)
	subscribeCollection(s, ctx, gen, gateway.Query{Collection: domain.CollectionSubmissions, Where: byUser}, applySubmissions)
	subscribeCollection(s, ctx, gen, gateway.Query{Collection: domain.CollectionWithdrawals, Where: byUser}, applyWithdrawals)
	subscribeCollection(s, ctx, gen, gateway.Query{Collection: domain.CollectionMessages, Where: byUser}, applyMessages)

	go func() {
		feed, err := s.gw.SubscribeDocument(ctx, domain.CollectionUsers, uid)
		if err != nil {
			zap.L().Warn("profile subscription failed", zap.String("uid", uid), zap.Error(err))
			return
		}
		forward(s, ctx, gen, feed, applyProfile)
	}()
}

// teardown cancels the current scope and clears user data. Events still in
// flight for it are ignored by generation.
func (s *Shell) teardown(st *State) {
	if st.scope != nil {
		st.scope.cancel()
		st.scope = nil
	}
	st.reset()
}

func subscribeCollection(s *Shell, ctx context.Context, gen uint64, q gateway.Query, apply func(*State, gateway.Snapshot)) {
	go func() {
		feed, err := s.gw.SubscribeCollection(ctx, q)
		if err != nil {
			zap.L().Warn("subscription failed", zap.String("collection", q.Collection), zap.Error(err))
			return
		}
		forward(s, ctx, gen, feed, apply)
	}()
}

func forward[T any](s *Shell, ctx context.Context, gen uint64, feed *gateway.Feed[T], apply func(*State, T)) {
	defer feed.Cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-feed.Done():
			return
		case v := <-feed.C():
			ok := s.post(func(st *State) {
				if st.scope == nil || st.scope.gen != gen {
					return
				}
				apply(st, v)
			})
			if !ok {
				return
			}
		}
	}
}

// decodeDocs skips documents that do not decode; they count as absent.
func decodeDocs[T any](snap gateway.Snapshot, setID func(*T, string)) []T {
	out := make([]T, 0, len(snap.Docs))
	for _, d := range snap.Docs {
		var v T
		if err := json.Unmarshal(d.Data, &v); err != nil {
			zap.L().Warn("skipping malformed document", zap.String("id", d.ID), zap.Error(err))
			continue
		}
		setID(&v, d.ID)
		out = append(out, v)
	}
	return out
}

func applyTasks(st *State, snap gateway.Snapshot) {
	st.Tasks = decodeDocs(snap, func(t *domain.Task, id string) { t.ID = id })
	if st.Modal != nil {
		if t, ok := st.task(st.Modal.Task.ID); ok {
			st.Modal.Task = t
		}
	}
}

func applySubmissions(st *State, snap gateway.Snapshot) {
	st.Submissions = decodeDocs(snap, func(sub *domain.Submission, id string) { sub.ID = id })
	st.Stats = stats.Compute(st.Submissions)
	for taskID := range st.submitted {
		if sub, ok := domain.SubmissionFor(st.Submissions, taskID); ok && sub.Status.Blocks() {
			delete(st.submitted, taskID)
		}
	}
}

func applyWithdrawals(st *State, snap gateway.Snapshot) {
	ws := decodeDocs(snap, func(w *domain.Withdrawal, id string) { w.ID = id })
	slices.SortStableFunc(ws, func(a, b domain.Withdrawal) int {
		if c := b.RequestedAt.Compare(a.RequestedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	st.Withdrawals = ws
}

func applyMessages(st *State, snap gateway.Snapshot) {
	ms := decodeDocs(snap, func(m *domain.UserMessage, id string) { m.ID = id })
	slices.SortStableFunc(ms, func(a, b domain.UserMessage) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	st.Messages = ms
}

func applyProfile(st *State, doc gateway.DocSnapshot) {
	if !doc.Exists || st.User == nil {
		return
	}
	var p domain.UserProfile
	if err := json.Unmarshal(doc.Data, &p); err != nil {
		zap.L().Warn("skipping malformed profile", zap.String("uid", doc.ID), zap.Error(err))
		return
	}
	st.User.Name = p.Name
	st.User.Email = p.Email
}
