package usage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"listinghub/pkg/models"
)

// DefaultDailyLimit is the free-tier generation allowance per email per day.
const DefaultDailyLimit = 5

// ErrLimitReached is returned when a non-pro email has exhausted its
// free generations for the day.
var ErrLimitReached = errors.New("free daily limit reached")

// Gate enforces the free daily limit against an injected Store. Pro emails
// bypass the counter entirely and are never incremented.
type Gate struct {
	Store Store
	Limit int

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewGate(store Store, limit int) *Gate {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Gate{Store: store, Limit: limit, Now: time.Now}
}

// canonicalEmail matches the normalization the HTTP layer applies, so the
// gate stays safe when called directly by the CLIs.
func canonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DayKey is the calendar bucket counters are kept under (UTC ISO date).
func (g *Gate) DayKey() string {
	if g.Now != nil {
		return g.Now().UTC().Format("2006-01-02")
	}
	return time.Now().UTC().Format("2006-01-02")
}

// Check reports whether the email may generate right now, without
// consuming quota.
func (g *Gate) Check(ctx context.Context, email string) error {
	email = canonicalEmail(email)

	pro, err := g.Store.IsPro(ctx, email)
	if err != nil {
		return fmt.Errorf("pro lookup: %w", err)
	}
	if pro {
		return nil
	}

	used, err := g.Store.Count(ctx, g.DayKey(), email)
	if err != nil {
		return fmt.Errorf("usage lookup: %w", err)
	}
	if used >= g.Limit {
		return ErrLimitReached
	}
	return nil
}

// Consume records one generation for a non-pro email. Pro emails are a
// no-op. Called after a successful generation, mirroring the
// check-then-increment flow of the form UI.
func (g *Gate) Consume(ctx context.Context, email string) error {
	email = canonicalEmail(email)

	pro, err := g.Store.IsPro(ctx, email)
	if err != nil {
		return fmt.Errorf("pro lookup: %w", err)
	}
	if pro {
		return nil
	}
	if err := g.Store.Increment(ctx, g.DayKey(), email); err != nil {
		return fmt.Errorf("usage increment: %w", err)
	}
	return nil
}

// Snapshot reports the email's standing for the current day.
func (g *Gate) Snapshot(ctx context.Context, email string) (models.PlanSnapshot, error) {
	email = canonicalEmail(email)

	snap := models.PlanSnapshot{Email: email, Limit: g.Limit}

	pro, err := g.Store.IsPro(ctx, email)
	if err != nil {
		return snap, fmt.Errorf("pro lookup: %w", err)
	}
	snap.Pro = pro

	used, err := g.Store.Count(ctx, g.DayKey(), email)
	if err != nil {
		return snap, fmt.Errorf("usage lookup: %w", err)
	}
	snap.Used = used

	snap.Remaining = g.Limit - used
	if snap.Remaining < 0 {
		snap.Remaining = 0
	}
	if pro {
		snap.Remaining = g.Limit
	}
	return snap, nil
}
