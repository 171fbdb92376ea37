package findmeeting

import (
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// MeetingRequest asks for a window of Duration minutes free for all required attendees.
// Durations longer than a day are valid and never satisfiable.
type MeetingRequest struct {
	attendees Attendees
	duration  int
}

type ParamsNewMeetingRequest struct {
	Attendees []string

	Duration int `valid:"required"`
}

func (params *ParamsNewMeetingRequest) IsValid() error {
	if params == nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewMeetingRequest",
			Issue: goerrors.ErrNilInput{
				InputName: "params",
			},
		}
	}

	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return ErrInvalidDuration{
			Duration: params.Duration,
			Issue: goerrors.ErrValidation{
				Caller: "IsValid - ParamsNewMeetingRequest",
				Issue:  errValidation,
			},
		}
	}

	if params.Duration <= 0 {
		return ErrInvalidDuration{
			Duration: params.Duration,
			Issue: goerrors.ErrNegativeInput{
				InputName: "Duration",
			},
		}
	}

	return nil
}

func NewMeetingRequest(params *ParamsNewMeetingRequest) (*MeetingRequest, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	attendees, errAttendees := NewAttendees(params.Attendees...)
	if errAttendees != nil {
		return nil,
			errAttendees
	}

	return &MeetingRequest{
			duration:  params.Duration,
			attendees: attendees,
		},
		nil
}

func (r *MeetingRequest) Duration() int {
	return r.duration
}

// Attendees returns the required attendee set. Callers must not modify it.
func (r *MeetingRequest) Attendees() Attendees {
	return r.attendees
}

func (r *MeetingRequest) String() string {
	return fmt.Sprintf(
		"MeetingRequest{Duration: %d, Attendees: %v}",

		r.duration,
		r.attendees.Sorted(),
	)
}
