package shop

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// customer is the single-owner representation behind every state value. Each
// transition poisons the current handle and hands the cart to a fresh one, so
// a stale alias can neither mutate nor observe the flow again.
type customer struct {
	cart     Cart
	out      io.Writer
	logger   *slog.Logger
	hooks    []FlowHooks
	consumed bool
}

// take consumes the handle. It is called exactly once per operation; a second
// call through a stale alias panics with ErrCustomerConsumed.
func (c *customer) take() *customer {
	if c == nil || c.consumed {
		panic(ErrCustomerConsumed)
	}
	c.consumed = true
	next := &customer{
		cart:   c.cart,
		out:    c.out,
		logger: c.logger,
		hooks:  c.hooks,
	}
	c.cart = nil
	return next
}

func (c *customer) say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *customer) emit(op Op, from, to State, item *ItemID) {
	e := &TransitionEvent{
		Time: time.Now(),
		Op:   op,
		From: from,
		To:   to,
		Item: item,
		Cart: c.cart.Clone(),
	}
	attrs := []any{"op", string(op), "from", string(from), "to", string(to), "cart", c.cart.String()}
	if item != nil {
		attrs = append(attrs, "item", int(*item))
	}
	c.logger.Debug("transition", attrs...)
	for _, h := range c.hooks {
		if h.OnTransition != nil {
			h.OnTransition(e)
		}
	}
}

// Browsing is a customer who has not (or no longer) committed anything to the
// cart. The only ways out are AddItem and Leave.
type Browsing struct {
	c *customer
}

// Shopping is a customer with a mutable cart. Self-loop operations return a
// fresh Shopping value; the receiver is consumed either way.
type Shopping struct {
	c *customer
}

// Checkout is a customer about to pay. The cart can no longer be mutated
// here, only carried back to Shopping or paid for.
type Checkout struct {
	c *customer
}

// VisitSite is the sole entry point of the flow. The customer starts in
// Browsing with an empty cart.
func VisitSite(opts ...Option) Browsing {
	c := &customer{
		out:    defaultOutput,
		logger: defaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.say("Hi site!")
	c.emit(OpVisitSite, "", StateBrowsing, nil)
	return Browsing{c: c}
}

// Leave ends the flow without buying anything. The receiver is consumed; no
// further operation is possible.
func (b Browsing) Leave() {
	c := b.c.take()
	c.say("Not buying anything, bye site!")
	c.emit(OpLeave, StateBrowsing, StateLeft, nil)
}

// AddItem puts the first item in the cart and moves the customer to Shopping.
func (b Browsing) AddItem(item ItemID) Shopping {
	c := b.c.take()
	c.addItem(item, StateBrowsing)
	return Shopping{c: c}
}

// AddItem appends an item to the cart. Duplicates are allowed.
func (s Shopping) AddItem(item ItemID) Shopping {
	c := s.c.take()
	c.addItem(item, StateShopping)
	return Shopping{c: c}
}

// PopItem removes the most recently added item. Popping an empty cart is a
// silent no-op, not an error.
func (s Shopping) PopItem() Shopping {
	c := s.c.take()
	if n := len(c.cart); n > 0 {
		popped := c.cart[n-1]
		c.cart = c.cart[:n-1]
		c.say("Removed %d from cart (%s)", popped, c.cart)
		c.emit(OpPopItem, StateShopping, StateShopping, &popped)
	}
	return Shopping{c: c}
}

// ClearCart abandons the cart and returns the customer to Browsing.
func (s Shopping) ClearCart() Browsing {
	c := s.c.take()
	c.cart = nil
	c.say("Cart has been cleared.")
	c.emit(OpClearCart, StateShopping, StateBrowsing, nil)
	return Browsing{c: c}
}

// ProceedToCheckout carries the cart, unchanged, into Checkout. An empty cart
// may proceed as well: the machine deliberately enforces no minimum.
func (s Shopping) ProceedToCheckout() Checkout {
	c := s.c.take()
	c.say("Proceeding to checkout.")
	c.emit(OpProceedToCheckout, StateShopping, StateCheckout, nil)
	return Checkout{c: c}
}

// CancelCheckout backtracks to Shopping with the cart unchanged.
func (ck Checkout) CancelCheckout() Shopping {
	c := ck.c.take()
	c.say("Cancelling checkout, continue shopping.")
	c.emit(OpCancelCheckout, StateCheckout, StateShopping, nil)
	return Shopping{c: c}
}

// FinalisePayment pays for the cart and ends the flow. The receiver is
// consumed; no further operation is possible.
func (ck Checkout) FinalisePayment() {
	c := ck.c.take()
	c.say("Done paying for the items, bye site!")
	c.emit(OpFinalisePayment, StateCheckout, StateDone, nil)
}

func (c *customer) addItem(item ItemID, from State) {
	c.cart = append(c.cart, item)
	c.say("Added %d to cart (%s)", item, c.cart)
	c.emit(OpAddItem, from, StateShopping, &item)
}
