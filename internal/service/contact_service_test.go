package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/repository"
	"github.com/alexanderramin/friendex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_Create(t *testing.T) {
	_, contacts, _ := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewContactService(contacts, testutil.FixedClock(testNow), obs)

	c := &domain.Contact{Name: "  Ada Lovelace ", Birthday: domain.NewDate(1990, time.December, 10)}
	require.NoError(t, svc.Create(ctx, c))
	assert.NotEmpty(t, c.ID, "UUID should be generated")
	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, testNow, c.CreatedAt)

	fetched, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", fetched.Name)
	assert.Empty(t, fetched.Meetings)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "create-contact", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
}

func TestContactService_Create_Rejects(t *testing.T) {
	_, contacts, _ := setupRepos(t)
	svc := NewContactService(contacts, testutil.FixedClock(testNow))

	tests := []struct {
		name    string
		contact domain.Contact
		want    error
	}{
		{"blank name", domain.Contact{Name: "  ", Birthday: domain.NewDate(1990, time.January, 1)}, ErrInvalidInput},
		{"no birthday", domain.Contact{Name: "Ada"}, ErrInvalidInput},
		{"birthday tomorrow", domain.Contact{Name: "Ada", Birthday: domain.NewDate(2021, time.March, 16)}, ErrDateAfterToday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.contact
			err := svc.Create(context.Background(), &c)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestContactService_Create_BirthdayTodayAllowed(t *testing.T) {
	_, contacts, _ := setupRepos(t)
	svc := NewContactService(contacts, testutil.FixedClock(testNow))
	c := &domain.Contact{Name: "Newborn", Birthday: domain.NewDate(2021, time.March, 15)}
	assert.NoError(t, svc.Create(context.Background(), c))
}

func TestContactService_GetByID_SortsAsOfNow(t *testing.T) {
	_, contacts, _ := setupRepos(t)
	ctx := context.Background()

	monthly := domain.RecurringEvent{Rule: domain.NewRule(domain.NewDate(2020, time.January, 31), domain.RecurMonthly), Description: "rent"}
	fixed := domain.FixedEvent{Date: domain.NewDate(2021, time.March, 20), Description: "concert"}
	// Stored order is deliberately stale.
	c := testutil.NewTestContact("Ada", testutil.WithSpecialDates(monthly, fixed))
	require.NoError(t, contacts.Create(ctx, c))

	svc := NewContactService(contacts, testutil.FixedClock(testNow))
	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	// rent resolves to 2021-03-31, after the concert.
	assert.Equal(t, []domain.Event{monthly, fixed}, got.SpecialDates)

	svc = NewContactService(contacts, testutil.FixedClock(time.Date(2021, time.April, 1, 9, 0, 0, 0, time.UTC)))
	got, err = svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Event{monthly, fixed}, got.SpecialDates, "rent moves to 2021-04-30")
}

func TestContactService_Resolve(t *testing.T) {
	_, contacts, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewContactService(contacts, testutil.FixedClock(testNow))

	ada := testutil.NewTestContact("Ada", testutil.WithContactID("aaaa1111-0000-4000-8000-000000000001"))
	ada2 := testutil.NewTestContact("ada", testutil.WithContactID("aaaa2222-0000-4000-8000-000000000002"))
	grace := testutil.NewTestContact("Grace Hopper", testutil.WithContactID("bbbb1111-0000-4000-8000-000000000003"))
	for _, c := range []*domain.Contact{ada, ada2, grace} {
		require.NoError(t, contacts.Create(ctx, c))
	}

	got, err := svc.Resolve(ctx, grace.ID)
	require.NoError(t, err)
	assert.Equal(t, grace.ID, got.ID)

	got, err = svc.Resolve(ctx, "grace hopper")
	require.NoError(t, err)
	assert.Equal(t, grace.ID, got.ID)

	got, err = svc.Resolve(ctx, "bbbb")
	require.NoError(t, err)
	assert.Equal(t, grace.ID, got.ID)

	got, err = svc.Resolve(ctx, "aaaa2")
	require.NoError(t, err)
	assert.Equal(t, ada2.ID, got.ID)

	_, err = svc.Resolve(ctx, "ADA")
	assert.ErrorIs(t, err, ErrAmbiguousRef)

	_, err = svc.Resolve(ctx, "aaaa")
	assert.ErrorIs(t, err, ErrAmbiguousRef)

	_, err = svc.Resolve(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Resolve(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContactService_Delete(t *testing.T) {
	_, contacts, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewContactService(contacts, testutil.FixedClock(testNow))

	c := testutil.NewTestContact("Ada")
	require.NoError(t, contacts.Create(ctx, c))
	require.NoError(t, svc.Delete(ctx, c.ID))

	_, err := svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
