package findmeeting

import (
	"fmt"
)

type ErrInvalidRange struct {
	Issue error

	Start int
	End   int
}

func (e ErrInvalidRange) Error() string {
	return fmt.Sprintf(
		"invalid time range [%d, %d): %s",

		e.Start,
		e.End,
		e.Issue,
	)
}

func (e ErrInvalidRange) Unwrap() error {
	return e.Issue
}

type ErrInvalidDuration struct {
	Issue error

	Duration int
}

func (e ErrInvalidDuration) Error() string {
	return fmt.Sprintf(
		"invalid meeting duration %d: %s",

		e.Duration,
		e.Issue,
	)
}

func (e ErrInvalidDuration) Unwrap() error {
	return e.Issue
}

type ErrInvalidAttendee struct {
	Issue error

	Position int
}

func (e ErrInvalidAttendee) Error() string {
	return fmt.Sprintf(
		"invalid attendee at position %d: %s",

		e.Position,
		e.Issue,
	)
}

func (e ErrInvalidAttendee) Unwrap() error {
	return e.Issue
}
