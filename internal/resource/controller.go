package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a reservation does not fit the budget.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// BudgetError describes a rejected reservation.
// It matches ErrMemoryLimitExceeded with errors.Is.
type BudgetError struct {
	Requested int64
	InUse     int64
	Limit     int64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%s: requested %d bytes with %d of %d in use", ErrMemoryLimitExceeded, e.Requested, e.InUse, e.Limit)
}

func (e *BudgetError) Is(target error) bool {
	return target == ErrMemoryLimitExceeded
}

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes caps the bytes reserved for points, centroids and
	// partitions. If 0, reservations are only tracked.
	MemoryLimitBytes int64

	// IOLimitBytesPerSec throttles input reading. If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Stats is a point-in-time view of a Controller.
type Stats struct {
	InUse    int64
	Peak     int64
	Limit    int64
	Rejected int64
}

// Controller owns the memory budget and IO rate shared by the runs of one
// process. All methods are safe for concurrent use.
type Controller struct {
	cfg Config

	budget   *semaphore.Weighted // nil if unlimited
	inUse    atomic.Int64
	peak     atomic.Int64
	rejected atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.budget = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	if cfg.IOLimitBytesPerSec > 0 {
		// One second worth of bytes may be read in a single burst.
		c.limiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// Reserve takes bytes from the budget without blocking. A reservation that
// does not fit returns a *BudgetError and leaves the budget unchanged.
func (c *Controller) Reserve(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.budget != nil && !c.budget.TryAcquire(bytes) {
		c.rejected.Add(1)
		return &BudgetError{Requested: bytes, InUse: c.inUse.Load(), Limit: c.cfg.MemoryLimitBytes}
	}

	used := c.inUse.Add(bytes)
	for {
		p := c.peak.Load()
		if used <= p || c.peak.CompareAndSwap(p, used) {
			break
		}
	}
	return nil
}

// Free returns bytes to the budget.
func (c *Controller) Free(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	if c.budget != nil {
		c.budget.Release(bytes)
	}
	c.inUse.Add(-bytes)
}

// InUse returns the bytes currently reserved.
func (c *Controller) InUse() int64 {
	if c == nil {
		return 0
	}
	return c.inUse.Load()
}

// Limit returns the memory budget in bytes (0 if unlimited).
func (c *Controller) Limit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// Stats returns the current counters.
func (c *Controller) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		InUse:    c.inUse.Load(),
		Peak:     c.peak.Load(),
		Limit:    c.cfg.MemoryLimitBytes,
		Rejected: c.rejected.Load(),
	}
}

// WaitIO blocks until the IO rate allows bytes more to be read.
// Requests larger than the burst are split into burst-sized waits.
func (c *Controller) WaitIO(ctx context.Context, bytes int) error {
	if c == nil || c.limiter == nil {
		return nil
	}
	burst := c.limiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.limiter.WaitN(ctx, n); err != nil {
			return fmt.Errorf("io limit: %w", err)
		}
		bytes -= n
	}
	return nil
}
