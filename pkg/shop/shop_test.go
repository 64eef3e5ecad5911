package shop_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopflow/shopflow/pkg/shop"
)

// cartSpy captures cart snapshots so tests can observe contents without the
// machine ever exposing state as data.
type cartSpy struct {
	last   shop.Cart
	events []shop.TransitionEvent
}

func (s *cartSpy) hooks() shop.FlowHooks {
	return shop.FlowHooks{
		OnTransition: func(e *shop.TransitionEvent) {
			s.last = e.Cart
			s.events = append(s.events, *e)
		},
	}
}

func quiet(extra ...shop.Option) []shop.Option {
	return append([]shop.Option{shop.WithOutput(io.Discard)}, extra...)
}

func TestScenarioA_DefaultFlow(t *testing.T) {
	spy := &cartSpy{}

	shopping := shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).
		AddItem(20).
		AddItem(42).
		AddItem(36).
		PopItem().
		PopItem().
		AddItem(100)

	assert.Equal(t, shop.Cart{20, 100}, spy.last, "cart before checkout")

	shopping.ProceedToCheckout().FinalisePayment()

	final := spy.events[len(spy.events)-1]
	assert.Equal(t, shop.OpFinalisePayment, final.Op)
	assert.Equal(t, shop.Cart{20, 100}, final.Cart, "payment covers exactly the remaining items")
}

func TestScenarioB_LeaveImmediately(t *testing.T) {
	spy := &cartSpy{}

	shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).Leave()

	require.Len(t, spy.events, 2)
	assert.Equal(t, shop.OpVisitSite, spy.events[0].Op)
	assert.Equal(t, shop.OpLeave, spy.events[1].Op)
	assert.Empty(t, spy.events[1].Cart)
}

func TestScenarioC_ClearThenLeave(t *testing.T) {
	spy := &cartSpy{}

	shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).
		AddItem(1).
		ClearCart().
		Leave()

	assert.Empty(t, spy.last, "cart reset before leaving")
}

func TestScenarioD_BacktrackFromCheckout(t *testing.T) {
	spy := &cartSpy{}

	checkout := shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).
		AddItem(1).
		ProceedToCheckout()

	checkout.CancelCheckout().
		ClearCart().
		Leave()

	assert.Empty(t, spy.last)

	var ops []shop.Op
	for _, e := range spy.events {
		ops = append(ops, e.Op)
	}
	assert.Equal(t, []shop.Op{
		shop.OpVisitSite,
		shop.OpAddItem,
		shop.OpProceedToCheckout,
		shop.OpCancelCheckout,
		shop.OpClearCart,
		shop.OpLeave,
	}, ops)
}

func TestPopItem_EmptyCartIsNoOp(t *testing.T) {
	spy := &cartSpy{}

	shopping := shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).
		AddItem(5).
		PopItem(). // empties the cart
		PopItem(). // no-op
		PopItem()  // still a no-op

	assert.Empty(t, spy.last)

	// The no-op pops emitted no events: visit, add, one pop.
	require.Len(t, spy.events, 3)

	shopping.ClearCart().Leave()
}

func TestCheckoutCancelRoundTripsCart(t *testing.T) {
	spy := &cartSpy{}

	shopping := shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).
		AddItem(7).
		AddItem(7). // duplicates are legal
		AddItem(9)

	shopping = shopping.ProceedToCheckout().CancelCheckout()

	assert.Equal(t, shop.Cart{7, 7, 9}, spy.last, "round trip leaves the cart untouched")

	shopping.ProceedToCheckout().FinalisePayment()
}

func TestEmptyCartMayCheckOut(t *testing.T) {
	// Deliberately permissive: no minimum-cart guard exists.
	spy := &cartSpy{}

	shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).
		AddItem(1).
		PopItem().
		ProceedToCheckout().
		FinalisePayment()

	final := spy.events[len(spy.events)-1]
	assert.Equal(t, shop.OpFinalisePayment, final.Op)
	assert.Empty(t, final.Cart)
}

func TestReuseAfterTransitionPanics(t *testing.T) {
	browsing := shop.VisitSite(quiet()...)
	shopping := browsing.AddItem(1)

	assert.PanicsWithValue(t, shop.ErrCustomerConsumed, func() {
		browsing.AddItem(2) // stale: browsing was consumed by the first AddItem
	})

	// The surviving value is unaffected by the failed reuse.
	shopping = shopping.AddItem(3)

	stale := shopping
	shopping = shopping.PopItem()
	assert.PanicsWithValue(t, shop.ErrCustomerConsumed, func() {
		stale.ProceedToCheckout()
	})

	checkout := shopping.ProceedToCheckout()
	checkout.FinalisePayment()
	assert.PanicsWithValue(t, shop.ErrCustomerConsumed, func() {
		checkout.CancelCheckout() // terminal op already consumed the value
	})
}

func TestZeroValueCustomerPanics(t *testing.T) {
	// Only VisitSite may mint customers; a zero value is unusable.
	var b shop.Browsing
	assert.PanicsWithValue(t, shop.ErrCustomerConsumed, func() {
		b.AddItem(1)
	})
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer

	shopping := shop.VisitSite(shop.WithOutput(&buf)).
		AddItem(20).
		AddItem(42).
		PopItem()

	checkout := shopping.ProceedToCheckout()
	shopping = checkout.CancelCheckout()
	shopping.ClearCart().Leave()

	want := []string{
		"Hi site!",
		"Added 20 to cart ([20])",
		"Added 42 to cart ([20, 42])",
		"Removed 42 from cart ([20])",
		"Proceeding to checkout.",
		"Cancelling checkout, continue shopping.",
		"Cart has been cleared.",
		"Not buying anything, bye site!",
	}
	assert.Equal(t, want, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"))
}

func TestCartString(t *testing.T) {
	assert.Equal(t, "[]", shop.Cart{}.String())
	assert.Equal(t, "[]", shop.Cart(nil).String())
	assert.Equal(t, "[20]", shop.Cart{20}.String())
	assert.Equal(t, "[20, 42, 42]", shop.Cart{20, 42, 42}.String())
}

func TestEventItemIsSetForCartMutations(t *testing.T) {
	spy := &cartSpy{}

	shop.VisitSite(quiet(shop.WithHooks(spy.hooks()))...).
		AddItem(13).
		PopItem().
		ClearCart().
		Leave()

	add := spy.events[1]
	require.NotNil(t, add.Item)
	assert.Equal(t, shop.ItemID(13), *add.Item)

	pop := spy.events[2]
	require.NotNil(t, pop.Item)
	assert.Equal(t, shop.ItemID(13), *pop.Item)

	cleared := spy.events[3]
	assert.Nil(t, cleared.Item)
}
