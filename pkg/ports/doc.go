// Package ports defines the driven-side interfaces of shopflow, following the
// hexagonal layout: the core machine stays pure while adapters (memory,
// redis) implement persistence for receipts.
package ports
