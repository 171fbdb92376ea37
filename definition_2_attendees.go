package findmeeting

import (
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type AttendeeID string

// Attendees is a set of attendee identifiers.
type Attendees map[AttendeeID]struct{}

// NewAttendees deduplicates the passed identifiers.
// Blank identifiers are rejected.
func NewAttendees(ids ...string) (Attendees, error) {
	result := make(Attendees, len(ids))

	for ix, id := range ids {
		if govalidator.IsNull(govalidator.Trim(id, "")) {
			return nil,
				ErrInvalidAttendee{
					Position: ix,
					Issue: goerrors.ErrNilInput{
						InputName: "attendee",
					},
				}
		}

		result[AttendeeID(id)] = struct{}{}
	}

	return result,
		nil
}

func (a Attendees) Len() int {
	return len(a)
}

func (a Attendees) Contains(id AttendeeID) bool {
	_, exists := a[id]

	return exists
}

// Intersects reports whether the two sets share at least one identifier.
func (a Attendees) Intersects(other Attendees) bool {
	smaller, larger := a, other
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	for id := range smaller {
		if larger.Contains(id) {
			return true
		}
	}

	return false
}

func (a Attendees) Sorted() []AttendeeID {
	result := make([]AttendeeID, 0, len(a))

	for id := range a {
		result = append(result, id)
	}

	slices.Sort(result)

	return result
}
