package shop

import "time"

// Receipt is the durable record of a finished (or abandoned) flow. It is
// observational output: nothing in the machine reads receipts back.
type Receipt struct {
	SessionID   string    `json:"session_id"`
	Items       []ItemID  `json:"items"`
	Paid        bool      `json:"paid"`
	Trail       []string  `json:"trail"`
	CompletedAt time.Time `json:"completed_at"`
}

// Recorder accumulates transition events into a Receipt. It observes a
// single, sequential flow and is not safe for concurrent use.
type Recorder struct {
	sessionID string
	items     Cart
	trail     []string
	paid      bool
	done      time.Time
}

// NewRecorder creates a recorder for one flow, keyed by session ID.
func NewRecorder(sessionID string) *Recorder {
	return &Recorder{sessionID: sessionID}
}

// Hooks returns the FlowHooks to register with VisitSite.
func (r *Recorder) Hooks() FlowHooks {
	return FlowHooks{OnTransition: r.observe}
}

func (r *Recorder) observe(e *TransitionEvent) {
	r.trail = append(r.trail, string(e.Op))
	r.items = e.Cart.Clone()
	switch e.To {
	case StateLeft, StateDone:
		r.paid = e.Op == OpFinalisePayment
		r.done = e.Time
	}
}

// Receipt returns the record accumulated so far. CompletedAt is zero until a
// terminal operation has been observed.
func (r *Recorder) Receipt() Receipt {
	return Receipt{
		SessionID:   r.sessionID,
		Items:       r.items.Clone(),
		Paid:        r.paid,
		Trail:       append([]string(nil), r.trail...),
		CompletedAt: r.done,
	}
}
