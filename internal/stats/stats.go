// Package stats derives the wallet counters shown to a user from their
// submission records.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/earnpro/internal/domain"
)

type Stats struct {
	PendingCount       int             `json:"pendingCount"`
	ApprovedCount      int             `json:"approvedCount"`
	RejectedCount      int             `json:"rejectedCount"`
	PendingAmount      decimal.Decimal `json:"pendingAmount"`
	WithdrawableAmount decimal.Decimal `json:"withdrawableAmount"`
}

// Compute is a pure function of subs. Records with an unknown status are
// ignored and a missing reward counts as zero.
func Compute(subs []domain.Submission) Stats {
	st := Stats{
		PendingAmount:      decimal.Zero,
		WithdrawableAmount: decimal.Zero,
	}
	for _, s := range subs {
		switch s.Status {
		case domain.SubmissionPending:
			st.PendingCount++
			st.PendingAmount = st.PendingAmount.Add(s.Reward)
		case domain.SubmissionApproved:
			st.ApprovedCount++
			st.WithdrawableAmount = st.WithdrawableAmount.Add(s.Reward)
		case domain.SubmissionRejected:
			st.RejectedCount++
		}
	}
	return st
}

// PayoutTotal sums the amounts of withdrawals that were paid out.
func PayoutTotal(ws []domain.Withdrawal) int64 {
	var total int64
	for _, w := range ws {
		if w.Status == domain.WithdrawalSuccess {
			total += w.Amount
		}
	}
	return total
}
