// Package observability exposes the shopping flow's transitions as
// Prometheus metrics. The collectors plug into the machine through the same
// FlowHooks mechanism as any other observer, so the core stays metric-free.
package observability
