package service

import (
	"context"
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
)

// Clock reports the current instant. Services read it once per operation.
type Clock func() time.Time

func clockOrDefault(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// sortedContact returns a copy of c whose event lists are ordered as seen from today.
func sortedContact(c *domain.Contact, today domain.Date) *domain.Contact {
	out := *c
	out.Meetings = domain.SortByEffectiveDate(c.Meetings, today)
	out.SpecialDates = domain.SortByEffectiveDate(c.SpecialDates, today)
	return &out
}

// observe reports a finished use case to obs. Call it deferred with a
// pointer to the named error result.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err *error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
