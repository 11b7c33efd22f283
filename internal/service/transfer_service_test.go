package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/storage"
	"github.com/alexanderramin/friendex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededContact() *domain.Contact {
	return testutil.NewTestContact("Ada Lovelace",
		testutil.WithBirthday(domain.NewDate(1990, time.December, 10)),
		testutil.WithMeetings(
			domain.FixedEvent{Date: domain.NewDate(2021, time.March, 1), Time: domain.NewTimeOfDay(12, 40), Description: "lunch"},
		),
		testutil.WithSpecialDates(
			domain.RecurringEvent{Rule: domain.NewRule(domain.NewDate(2021, time.January, 31), domain.RecurMonthly), Description: "rent"},
			domain.RecurringEvent{Rule: domain.NewRule(domain.NewDate(2021, time.March, 14), domain.RecurWeekly), Description: "climbing"},
		),
	)
}

func TestTransferService_ExportImportRoundTrip(t *testing.T) {
	for _, format := range []storage.Format{storage.FormatJSON, storage.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			ctx := context.Background()
			_, srcContacts, srcUoW := setupRepos(t)
			original := seededContact()
			require.NoError(t, srcContacts.Create(ctx, original))

			var buf bytes.Buffer
			n, err := NewTransferService(srcContacts, srcUoW, nil, testutil.FixedClock(testNow)).Export(ctx, &buf, format)
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			_, dstContacts, dstUoW := setupRepos(t)
			result, err := NewTransferService(dstContacts, dstUoW, nil, testutil.FixedClock(testNow)).Import(ctx, &buf, format)
			require.NoError(t, err)
			require.Len(t, result.Contacts, 1)
			assert.Equal(t, 1, result.MeetingCount)
			assert.Equal(t, 2, result.DateCount)

			got, err := dstContacts.GetByID(ctx, original.ID)
			require.NoError(t, err)
			assert.Equal(t, original.Name, got.Name)
			assert.Equal(t, original.Birthday, got.Birthday)
			assert.Equal(t, original.Meetings, got.Meetings)
			assert.ElementsMatch(t, original.SpecialDates, got.SpecialDates)
		})
	}
}

func TestTransferService_ExportICS(t *testing.T) {
	ctx := context.Background()
	_, contacts, uow := setupRepos(t)
	require.NoError(t, contacts.Create(ctx, seededContact()))

	var buf bytes.Buffer
	_, err := NewTransferService(contacts, uow, nil, testutil.FixedClock(testNow)).Export(ctx, &buf, storage.FormatICS)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
	assert.Contains(t, buf.String(), "FREQ=MONTHLY;BYMONTHDAY=28,29,30,31;BYSETPOS=-1")
}

func TestTransferService_ImportAssignsIDs(t *testing.T) {
	_, contacts, uow := setupRepos(t)
	doc := `{"version":1,"contacts":[{"name":"Bob","birthday":"1980-01-01","meetings":[],"dates":[]}]}`

	result, err := NewTransferService(contacts, uow, nil, testutil.FixedClock(testNow)).
		Import(context.Background(), strings.NewReader(doc), storage.FormatJSON)
	require.NoError(t, err)
	require.Len(t, result.Contacts, 1)
	assert.NotEmpty(t, result.Contacts[0].ID)
	assert.Equal(t, testNow, result.Contacts[0].CreatedAt)
}

func TestTransferService_ImportIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	_, contacts, uow := setupRepos(t)
	existing := testutil.NewTestContact("Existing", testutil.WithContactID("11111111-0000-4000-8000-000000000001"))
	require.NoError(t, contacts.Create(ctx, existing))

	doc := `{"contacts":[
		{"name":"Fresh","birthday":"1980-01-01"},
		{"id":"11111111-0000-4000-8000-000000000001","name":"Clash","birthday":"1980-01-01"}
	]}`
	_, err := NewTransferService(contacts, uow, nil, testutil.FixedClock(testNow)).
		Import(ctx, strings.NewReader(doc), storage.FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidInput)

	all, err := contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Existing", all[0].Name)
}

func TestTransferService_ImportRejectsBadDocumentsBeforeWriting(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			"structural error in second contact",
			`{"contacts":[{"name":"A","birthday":"1980-01-01"},{"name":"B","birthday":"1980-01-01","dates":[{"date":"2021-01-01","description":"x"}]}]}`,
			storage.ErrMissingField,
		},
		{
			"future birthday",
			`{"contacts":[{"name":"A","birthday":"2030-01-01"}]}`,
			ErrDateAfterToday,
		},
		{
			"duplicate ids",
			`{"contacts":[{"id":"x","name":"A","birthday":"1980-01-01"},{"id":"x","name":"B","birthday":"1980-01-01"}]}`,
			ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			_, contacts, uow := setupRepos(t)
			_, err := NewTransferService(contacts, uow, nil, testutil.FixedClock(testNow)).
				Import(ctx, strings.NewReader(tt.doc), storage.FormatJSON)
			assert.ErrorIs(t, err, tt.want)

			all, err := contacts.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestTransferService_ImportRollsBackOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	database, contacts, _ := setupRepos(t)

	// Exec #1 inserts the contact, #2-#3 write meetings, #4 clears special dates.
	failUoW := &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: errors.New("injected failure")}
	svc := NewTransferService(contacts, failUoW, nil, testutil.FixedClock(testNow))

	_, err := svc.Import(ctx, strings.NewReader(`{"contacts":[{"name":"A","birthday":"1980-01-01"}]}`), storage.FormatJSON)
	require.Error(t, err)

	all, err := contacts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransferService_ImportICSUnsupported(t *testing.T) {
	_, contacts, uow := setupRepos(t)
	_, err := NewTransferService(contacts, uow, nil, testutil.FixedClock(testNow)).
		Import(context.Background(), strings.NewReader("BEGIN:VCALENDAR"), storage.FormatICS)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTransferService_DiagnosticsReachSink(t *testing.T) {
	_, contacts, uow := setupRepos(t)
	var log bytes.Buffer
	codec := storage.NewCodec(storage.NewLogSink(&log))

	_, err := NewTransferService(contacts, uow, codec, testutil.FixedClock(testNow)).
		Import(context.Background(), strings.NewReader(`{"contacts":[{"name":"Bob"}]}`), storage.FormatJSON)
	require.Error(t, err)
	assert.Contains(t, log.String(), "deserialize_error")
	assert.Contains(t, log.String(), "Bob")
}
