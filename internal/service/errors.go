package service

import (
	"errors"

	"github.com/alexanderramin/friendex/internal/storage"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDateAfterToday     = errors.New("date is after today")
	ErrTimeAfterNow       = errors.New("time is after the current time")
	ErrDateBeforeBirthday = errors.New("date is before the contact's birthday")
	ErrRecurringMeeting   = errors.New("meetings cannot recur")
	ErrAmbiguousRef       = errors.New("reference matches more than one contact")
	ErrUnsupportedFormat  = storage.ErrUnsupportedFormat
)
