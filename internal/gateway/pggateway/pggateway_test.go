package pggateway

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/earnpro/internal/gateway"
	"github.com/GlebRadaev/earnpro/internal/pg"
)

type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) {
	return "h:" + password, nil
}

func (plainHasher) ComparePassword(hashedPassword, password string) bool {
	return hashedPassword == "h:"+password
}

type resetRecorder struct {
	email, link string
	inTx        bool
}

func (r *resetRecorder) SendReset(ctx context.Context, email, link string) error {
	_, r.inTx = pg.TxFromContext(ctx)
	r.email, r.link = email, link
	return nil
}

func NewMock(t *testing.T) (*Backend, pgxmock.PgxPoolIface, *pg.MockTXManager, *resetRecorder) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	resets := &resetRecorder{}
	b := New(mockDB, mockTxManager, NewHub(nil, 2), plainHasher{}, resets, "http://app.test/reset")
	return b, mockDB, mockTxManager, resets
}

func receive[T any](t *testing.T, f *gateway.Feed[T]) T {
	t.Helper()
	select {
	case v := <-f.C():
		return v
	case <-time.After(time.Second):
		t.Fatal("no value on feed")
	}
	var zero T
	return zero
}

func TestSelectQuery(t *testing.T) {
	sql, args := selectQuery(gateway.Query{
		Collection: "task_submissions",
		Where:      []gateway.Filter{{Field: "uid", Value: "u1"}, {Field: "status", Value: "pending"}},
	})

	assert.Equal(t, "SELECT id, data FROM documents WHERE collection = $1 AND data ->> $2 = $3 AND data ->> $4 = $5 ORDER BY created_at, id", sql)
	assert.Equal(t, []any{"task_submissions", "uid", "u1", "status", "pending"}, args)
}

func TestClient_SignUp(t *testing.T) {
	b, mock, _, _ := NewMock(t)

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func()
		expectErr error
	}{
		{
			name:     "Account created",
			email:    " Asha@Mail.test",
			password: "secret1",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertAccount)).
					WithArgs(pgxmock.AnyArg(), "asha@mail.test", "h:secret1").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:     "Email taken",
			email:    "asha@mail.test",
			password: "secret1",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(insertAccount)).
					WithArgs(pgxmock.AnyArg(), "asha@mail.test", "h:secret1").
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			expectErr: gateway.ErrEmailInUse,
		},
		{
			name:      "Weak password",
			email:     "asha@mail.test",
			password:  "123",
			mockSetup: func() {},
			expectErr: gateway.ErrWeakPassword,
		},
		{
			name:      "Invalid email",
			email:     "asha",
			password:  "secret1",
			mockSetup: func() {},
			expectErr: gateway.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			c := b.Connect()

			user, err := c.SignUp(context.Background(), tt.email, tt.password)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, c.auth.Current())
			} else {
				require.NoError(t, err)
				assert.Equal(t, "asha@mail.test", user.Email)
				assert.Equal(t, user, c.auth.Current())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClient_SignIn(t *testing.T) {
	b, mock, _, _ := NewMock(t)

	tests := []struct {
		name      string
		password  string
		mockSetup func()
		expectErr error
	}{
		{
			name:     "Valid credentials",
			password: "secret1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccount)).
					WithArgs("asha@mail.test").
					WillReturnRows(pgxmock.NewRows([]string{"uid", "password_hash"}).AddRow("u1", "h:secret1"))
			},
		},
		{
			name:     "Wrong password",
			password: "nope",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccount)).
					WithArgs("asha@mail.test").
					WillReturnRows(pgxmock.NewRows([]string{"uid", "password_hash"}).AddRow("u1", "h:secret1"))
			},
			expectErr: gateway.ErrInvalidCredentials,
		},
		{
			name:     "Unknown account",
			password: "secret1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccount)).
					WithArgs("asha@mail.test").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: gateway.ErrInvalidCredentials,
		},
		{
			name:     "Database error",
			password: "secret1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectAccount)).
					WithArgs("asha@mail.test").
					WillReturnError(errors.New("database error"))
			},
			expectErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			c := b.Connect()

			user, err := c.SignIn(context.Background(), "asha@mail.test", tt.password)
			switch {
			case tt.expectErr == nil:
				require.NoError(t, err)
				assert.Equal(t, &gateway.AuthUser{UID: "u1", Email: "asha@mail.test"}, user)
				assert.Equal(t, user, c.auth.Current())
			case errors.Is(tt.expectErr, assert.AnError):
				assert.Error(t, err)
			default:
				assert.ErrorIs(t, err, tt.expectErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClient_SendPasswordReset(t *testing.T) {
	b, mock, txManager, resets := NewMock(t)
	c := b.Connect()

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).Times(2)

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountID)).
		WithArgs("asha@mail.test").
		WillReturnRows(pgxmock.NewRows([]string{"uid"}).AddRow("u1"))
	mock.ExpectExec(regexp.QuoteMeta(insertReset)).
		WithArgs(pgxmock.AnyArg(), "u1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, c.SendPasswordReset(context.Background(), "asha@mail.test"))
	assert.Equal(t, "asha@mail.test", resets.email)
	assert.Contains(t, resets.link, "http://app.test/reset?token=")

	mock.ExpectQuery(regexp.QuoteMeta(selectAccountID)).
		WithArgs("nobody@mail.test").
		WillReturnError(pgx.ErrNoRows)

	err := c.SendPasswordReset(context.Background(), "nobody@mail.test")
	assert.ErrorIs(t, err, gateway.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SetDocument(t *testing.T) {
	b, mock, _, _ := NewMock(t)
	b.now = func() time.Time { return time.Date(2024, 3, 1, 17, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)) }
	c := b.Connect()

	mock.ExpectExec(regexp.QuoteMeta(upsertDocument)).
		WithArgs("users", "u1", `{"createdAt":"2024-03-01T12:00:00Z","name":"Asha"}`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := c.SetDocument(context.Background(), "users", "u1", map[string]any{
		"name":      "Asha",
		"createdAt": gateway.ServerTimestamp,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, c.SetDocument(context.Background(), "users", "", nil), gateway.ErrInvalidQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_CreateRecord(t *testing.T) {
	b, mock, _, _ := NewMock(t)
	c := b.Connect()

	mock.ExpectExec(regexp.QuoteMeta(upsertDocument)).
		WithArgs("withdrawal_requests", pgxmock.AnyArg(), `{"amount":50}`).
		WillReturnError(errors.New("database error"))

	_, err := c.CreateRecord(context.Background(), "withdrawal_requests", map[string]any{"amount": 50})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SubscribeCollection(t *testing.T) {
	b, mock, _, _ := NewMock(t)
	c := b.Connect()
	q := gateway.Query{Collection: "tasks", Where: []gateway.Filter{{Field: "status", Value: "active"}}}
	sql, _ := selectQuery(q)

	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs("tasks", "status", "active").
		WillReturnRows(pgxmock.NewRows([]string{"id", "data"}).AddRow("t1", []byte(`{"title":"A"}`)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed, err := c.SubscribeCollection(ctx, q)
	require.NoError(t, err)

	snap := receive(t, feed)
	require.Len(t, snap.Docs, 1)
	assert.JSONEq(t, `{"title":"A"}`, string(snap.Docs[0].Data))

	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs("tasks", "status", "active").
		WillReturnRows(pgxmock.NewRows([]string{"id", "data"}).
			AddRow("t1", []byte(`{"title":"A"}`)).
			AddRow("t2", []byte(`{"title":"B"}`)))

	b.hub.dispatch(ctx, "tasks")
	snap = receive(t, feed)
	require.Len(t, snap.Docs, 2)
	assert.Equal(t, "t2", snap.Docs[1].ID)

	assert.Equal(t, 1, b.hub.Watches())
	cancel()
	assert.Eventually(t, func() bool { return b.hub.Watches() == 0 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SubscribeCollectionSeesWriteDuringFirstQuery(t *testing.T) {
	b, mock, _, _ := NewMock(t)
	c := b.Connect()
	q := gateway.Query{Collection: "tasks"}
	sql, _ := selectQuery(q)

	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs("tasks").
		WillReturnRows(pgxmock.NewRows([]string{"id", "data"}).AddRow("t1", []byte(`{"title":"A"}`))).
		WillDelayFor(100 * time.Millisecond)
	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs("tasks").
		WillReturnRows(pgxmock.NewRows([]string{"id", "data"}).
			AddRow("t1", []byte(`{"title":"A"}`)).
			AddRow("t2", []byte(`{"title":"B"}`)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if assert.Eventually(t, func() bool { return b.hub.Watches() == 1 }, time.Second, time.Millisecond) {
			b.hub.dispatch(ctx, "tasks")
		}
	}()

	feed, err := c.SubscribeCollection(ctx, q)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		select {
		case snap := <-feed.C():
			return len(snap.Docs) == 2
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SubscribeCollectionError(t *testing.T) {
	b, mock, _, _ := NewMock(t)
	c := b.Connect()
	q := gateway.Query{Collection: "tasks"}
	sql, _ := selectQuery(q)

	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs("tasks").
		WillReturnError(errors.New("database error"))

	_, err := c.SubscribeCollection(context.Background(), q)
	assert.Error(t, err)
	assert.Equal(t, 0, b.hub.Watches())

	_, err = c.SubscribeCollection(context.Background(), gateway.Query{})
	assert.ErrorIs(t, err, gateway.ErrInvalidQuery)
}

func TestClient_SubscribeDocument(t *testing.T) {
	b, mock, _, _ := NewMock(t)
	c := b.Connect()

	mock.ExpectQuery(regexp.QuoteMeta(selectDocument)).
		WithArgs("users", "u1").
		WillReturnError(pgx.ErrNoRows)

	feed, err := c.SubscribeDocument(context.Background(), "users", "u1")
	require.NoError(t, err)
	defer feed.Cancel()
	assert.False(t, receive(t, feed).Exists)

	mock.ExpectQuery(regexp.QuoteMeta(selectDocument)).
		WithArgs("users", "u1").
		WillReturnRows(pgxmock.NewRows([]string{"data"}).AddRow([]byte(`{"name":"Asha"}`)))

	b.hub.dispatch(context.Background(), "users")
	doc := receive(t, feed)
	assert.True(t, doc.Exists)
	assert.JSONEq(t, `{"name":"Asha"}`, string(doc.Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}
