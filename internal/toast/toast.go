package toast

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Toast struct {
	Message string `json:"message"`
	Kind    Kind   `json:"type"`
	Visible bool   `json:"isVisible"`
}

// Notifier keeps the single toast of a session. It is not safe for concurrent
// use; the shell reducer owns it.
type Notifier struct {
	current Toast
	seq     uint64
}

// Show replaces the current toast and returns the sequence number to pass to
// Expire once its timer fires.
func (n *Notifier) Show(message string, kind Kind) uint64 {
	if kind == "" {
		kind = Info
	}
	n.seq++
	n.current = Toast{Message: message, Kind: kind, Visible: true}
	return n.seq
}

// Expire hides the toast only if nothing newer was shown since seq.
func (n *Notifier) Expire(seq uint64) bool {
	if seq != n.seq || !n.current.Visible {
		return false
	}
	n.current.Visible = false
	return true
}

func (n *Notifier) Dismiss() {
	n.current.Visible = false
}

func (n *Notifier) Current() Toast {
	return n.current
}
