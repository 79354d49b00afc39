// Package mailer delivers password reset links through a River job.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/GlebRadaev/earnpro/internal/pg"
)

var ErrWebhookStatus = errors.New("mail webhook returned non-2xx status")

type ResetMailArgs struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

func (ResetMailArgs) Kind() string { return "password_reset_mail" }

type Poster interface {
	PostJSON(ctx context.Context, url string, payload any) (statusCode int, respBody []byte, err error)
}

// Deliverer sends one reset mail. With no webhook the link is only logged.
type Deliverer struct {
	webhookURL string
	client     Poster
}

func NewDeliverer(webhookURL string, client Poster) *Deliverer {
	return &Deliverer{webhookURL: webhookURL, client: client}
}

func (d *Deliverer) Deliver(ctx context.Context, args ResetMailArgs) error {
	if d.webhookURL == "" {
		zap.L().Info("password reset link", zap.String("email", args.Email), zap.String("link", args.Link))
		return nil
	}

	status, _, err := d.client.PostJSON(ctx, d.webhookURL, args)
	if err != nil {
		return fmt.Errorf("call mail webhook: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: %d", ErrWebhookStatus, status)
	}
	return nil
}

// SendReset delivers immediately. It serves backends without a job queue.
func (d *Deliverer) SendReset(ctx context.Context, email, link string) error {
	return d.Deliver(ctx, ResetMailArgs{Email: email, Link: link})
}

type ResetMailWorker struct {
	river.WorkerDefaults[ResetMailArgs]
	deliverer *Deliverer
}

func NewResetMailWorker(d *Deliverer) *ResetMailWorker {
	return &ResetMailWorker{deliverer: d}
}

func (w *ResetMailWorker) Work(ctx context.Context, job *river.Job[ResetMailArgs]) error {
	if err := w.deliverer.Deliver(ctx, job.Args); err != nil {
		zap.L().Warn("Reset mail delivery failed", zap.Int64("job", job.ID), zap.Int("attempt", job.Attempt), zap.Error(err))
		return err
	}
	return nil
}

// InsertFunc enqueues a reset mail job, inside tx when tx is not nil.
type InsertFunc func(ctx context.Context, tx pgx.Tx, args ResetMailArgs) error

// RiverInserter adapts a River client to InsertFunc.
func RiverInserter(client *river.Client[pgx.Tx]) InsertFunc {
	return func(ctx context.Context, tx pgx.Tx, args ResetMailArgs) error {
		if tx == nil {
			_, err := client.Insert(ctx, args, nil)
			return err
		}
		_, err := client.InsertTx(ctx, tx, args, nil)
		return err
	}
}

// Queue enqueues reset mails in the transaction carried by ctx, so the job
// exists only if the reset token was stored.
type Queue struct {
	insert InsertFunc
}

func NewQueue(insert InsertFunc) *Queue {
	return &Queue{insert: insert}
}

func (q *Queue) SendReset(ctx context.Context, email, link string) error {
	tx, _ := pg.TxFromContext(ctx)
	if err := q.insert(ctx, tx, ResetMailArgs{Email: email, Link: link}); err != nil {
		return fmt.Errorf("enqueue reset mail: %w", err)
	}
	return nil
}
