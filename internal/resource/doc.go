// Package resource implements memory budgeting and IO throttling for clustering runs.
//
// The Controller manages two resource types:
//
//   - Memory: Track and limit run-scoped allocations (non-blocking, fail-fast)
//   - IO: Rate-limit input reading so a large batch load cannot saturate a shared link
//
// # Architecture
//
//	┌───────────────────────────────────────────┐
//	│                Controller                 │
//	├─────────────────────┬─────────────────────┤
//	│  Memory Limit       │  IO Rate Limiter    │
//	│  (fail-fast)        │  (token bucket)     │
//	├─────────────────────┼─────────────────────┤
//	│  Reserve            │  WaitIO             │
//	│  Free               │  RateLimitedReader  │
//	│  InUse, Stats       │                     │
//	└─────────────────────┴─────────────────────┘
//
// # Run Scopes
//
// A Scope groups every reservation made on behalf of one run. Reservations are
// returned individually with Release as structures are discarded, and Close
// returns whatever is still held. Close runs exactly once, so it is safe to
// defer it at the top of a run and also call it explicitly:
//
//	scope := resource.NewScope(rc)
//	defer scope.Close()
//
//	if err := scope.Acquire(int64(k*dim) * 8); err != nil {
//	    return err // *BudgetError, matches ErrMemoryLimitExceeded
//	}
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
