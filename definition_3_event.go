package findmeeting

import (
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Event is an already scheduled occupation of a time range by a set of attendees.
// An event without attendees never constrains a meeting request.
type Event struct {
	title     string
	attendees Attendees
	when      TimeRange
}

type ParamsNewEvent struct {
	Title     string `valid:"-"`
	Attendees []string

	When TimeRange `valid:"-"`
}

func (params *ParamsNewEvent) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvent",
			Issue: goerrors.ErrNilInput{
				InputName: "params",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewEvent",
			Issue:  errValidation,
		}
	}

	return nil
}

func NewEvent(params *ParamsNewEvent) (*Event, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	attendees, errAttendees := NewAttendees(params.Attendees...)
	if errAttendees != nil {
		return nil,
			errAttendees
	}

	return &Event{
			title:     params.Title,
			when:      params.When,
			attendees: attendees,
		},
		nil
}

func (e *Event) Title() string {
	return e.title
}

func (e *Event) When() TimeRange {
	return e.when
}

// Attendees returns the event's attendee set. Callers must not modify it.
func (e *Event) Attendees() Attendees {
	return e.attendees
}

func (e *Event) String() string {
	var sb strings.Builder

	sb.WriteString("Event{")
	sb.WriteString(fmt.Sprintf("Title: %q, ", e.title))
	sb.WriteString(fmt.Sprintf("When: %s, ", e.when))
	sb.WriteString(fmt.Sprintf("Attendees: %v", e.attendees.Sorted()))
	sb.WriteString("}")

	return sb.String()
}
