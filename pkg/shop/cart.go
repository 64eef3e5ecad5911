package shop

import (
	"strconv"
	"strings"
)

// ItemID identifies a catalogue entry. The machine accepts any value and
// performs no validation; duplicates are allowed and order is preserved.
type ItemID int

// Cart is an ordered sequence of item identifiers, newest last.
type Cart []ItemID

// String renders the cart as "[20, 42]", the format used by the status lines.
func (c Cart) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(item)))
	}
	b.WriteByte(']')
	return b.String()
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
