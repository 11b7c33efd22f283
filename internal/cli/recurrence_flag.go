package cli

import (
	"strings"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/spf13/pflag"
)

// recurrenceFlag is a pflag.Value restricted to none, weekly and monthly.
type recurrenceFlag domain.RecurrenceKind

var _ pflag.Value = (*recurrenceFlag)(nil)

func newRecurrenceFlag() *recurrenceFlag {
	f := recurrenceFlag(domain.RecurNone)
	return &f
}

func (f *recurrenceFlag) String() string {
	return strings.ToLower(string(*f))
}

func (f *recurrenceFlag) Set(s string) error {
	kind, err := domain.ParseRecurrenceKind(s)
	if err != nil {
		return err
	}
	*f = recurrenceFlag(kind)
	return nil
}

func (f *recurrenceFlag) Type() string {
	return "none|weekly|monthly"
}

func (f *recurrenceFlag) Kind() domain.RecurrenceKind {
	return domain.RecurrenceKind(*f)
}
