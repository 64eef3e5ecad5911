package shop

import "time"

// State is the observational label attached to transition events. It exists
// for logs, metrics and receipts only: the machine itself encodes state in
// the type of the customer value and never branches on these labels.
type State string

const (
	StateBrowsing State = "browsing"
	StateShopping State = "shopping"
	StateCheckout State = "checkout"

	// StateLeft and StateDone label the two terminal absorptions. Neither has
	// a representation; they exist only as event destinations.
	StateLeft State = "left"
	StateDone State = "done"
)

// Op names a transition operation in events and receipt trails.
type Op string

const (
	OpVisitSite         Op = "visit_site"
	OpLeave             Op = "leave"
	OpAddItem           Op = "add_item"
	OpPopItem           Op = "pop_item"
	OpClearCart         Op = "clear_cart"
	OpProceedToCheckout Op = "proceed_to_checkout"
	OpCancelCheckout    Op = "cancel_checkout"
	OpFinalisePayment   Op = "finalise_payment"
)

// TransitionEvent describes a single transition or cart mutation.
type TransitionEvent struct {
	Time time.Time `json:"time"`
	Op   Op        `json:"op"`
	From State     `json:"from"`
	To   State     `json:"to"`

	// Item is set for add_item and pop_item, nil otherwise. A pop_item on an
	// empty cart emits no event at all (the operation is a no-op).
	Item *ItemID `json:"item,omitempty"`

	// Cart is a snapshot taken after the operation applied.
	Cart Cart `json:"cart"`
}

// FlowHooks defines observability callbacks for the machine. Zero-value
// hooks are valid and simply observe nothing.
type FlowHooks struct {
	OnTransition func(*TransitionEvent)
}
