/*
Package shop models a linear customer shopping flow as a typestate machine:
the customer's current protocol phase is encoded in the Go type system, so the
set of operations you can call next is decided at compile time, not by a
runtime check.

# States

The flow has three live states, each a distinct nominal type:

  - Browsing: just arrived, or came back after clearing the cart.
  - Shopping: at least one item has been added; the cart is mutable here.
  - Checkout: cart is locked in, waiting for payment or a change of heart.

A fourth, implicit "left" state is reached by the two terminal operations
(Leave, FinalisePayment): they consume the customer and return nothing, so
there is no value left to misuse afterwards.

# Ownership

Every operation consumes its receiver. Go has no move semantics, so the
guarantee is split in two:

  - Calling an operation that is not legal for the current state is a compile
    error: Browsing has no PopItem, Checkout has no AddItem, and the three
    state types share no interface that would let them stand in for each other.
  - Reusing a value after it has been passed through a transition panics with
    ErrCustomerConsumed. Each state value wraps a single-owner handle that is
    poisoned on every transition; the returned value wraps a fresh one.

Always rebind the result of a transition and let the old value go out of
scope:

	shopping := shop.VisitSite().AddItem(20)
	shopping = shopping.AddItem(42) // self-loop: same state, fresh value
	shopping.ProceedToCheckout().FinalisePayment()

# Observability

Transitions emit human-readable status lines to a configurable writer and
structured TransitionEvents to registered FlowHooks. Both are side channels:
the machine itself never reads its own state back as data.
*/
package shop
