package findmeeting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttendees(t *testing.T) {
	t.Run(
		"1. deduplicates",
		func(t *testing.T) {
			attendees, errCr := NewAttendees("b", "a", "b")
			require.NoError(t, errCr)
			require.Equal(t, 2, attendees.Len())
			require.Equal(t, []AttendeeID{"a", "b"}, attendees.Sorted())
		},
	)

	t.Run(
		"2. blank identifier",
		func(t *testing.T) {
			attendees, errCr := NewAttendees("a", "  ")
			require.Error(t, errCr)
			require.Nil(t, attendees)

			var errAttendee ErrInvalidAttendee
			require.ErrorAs(t, errCr, &errAttendee)
			require.Equal(t, 1, errAttendee.Position)
		},
	)

	t.Run(
		"3. intersects on any shared attendee",
		func(t *testing.T) {
			ab, _ := NewAttendees("a", "b")
			bc, _ := NewAttendees("b", "c", "d")
			cd, _ := NewAttendees("c", "d")
			none, _ := NewAttendees()

			require.True(t, ab.Intersects(bc))
			require.True(t, bc.Intersects(ab))
			require.False(t, ab.Intersects(cd))
			require.False(t, ab.Intersects(none))
			require.False(t, none.Intersects(none))
		},
	)
}

func TestErrorsEvent(t *testing.T) {
	t.Run(
		"1. nil params",
		func(t *testing.T) {
			event, errCr := NewEvent(nil)
			require.Error(t, errCr)
			require.Nil(t, event)
		},
	)

	t.Run(
		"2. empty attendee",
		func(t *testing.T) {
			event, errCr := NewEvent(
				&ParamsNewEvent{
					When:      MustFromStartEnd(540, 600, false),
					Attendees: []string{"a", ""},
				},
			)
			require.Error(t, errCr)
			require.Nil(t, event)
		},
	)
}

func TestEvent(t *testing.T) {
	event, errCr := NewEvent(
		&ParamsNewEvent{
			Title:     "standup",
			When:      MustFromStartEnd(540, 600, false),
			Attendees: []string{"a", "b", "a"},
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, event)

	require.Equal(t, "standup", event.Title())
	require.Equal(t, MustFromStartEnd(540, 600, false), event.When())
	require.Equal(t, 2, event.Attendees().Len())
	require.Equal(t, `Event{Title: "standup", When: [09:00-10:00), Attendees: [a b]}`, event.String())

	noAttendees, errCr := NewEvent(
		&ParamsNewEvent{
			When: WholeDay,
		},
	)
	require.NoError(t, errCr)
	require.Zero(t, noAttendees.Attendees().Len())
}

func TestErrorsMeetingRequest(t *testing.T) {
	tests := []struct {
		name     string
		duration int
	}{
		{"1. zero duration", 0},
		{"2. negative duration", -30},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				request, errCr := NewMeetingRequest(
					&ParamsNewMeetingRequest{
						Duration:  tt.duration,
						Attendees: []string{"a"},
					},
				)
				require.Error(t, errCr)
				require.Nil(t, request)

				var errDuration ErrInvalidDuration
				require.ErrorAs(t, errCr, &errDuration)
				require.Equal(t, tt.duration, errDuration.Duration)
			},
		)
	}

	t.Run(
		"3. nil params",
		func(t *testing.T) {
			request, errCr := NewMeetingRequest(nil)
			require.Error(t, errCr)
			require.Nil(t, request)
		},
	)
}

func TestMeetingRequest(t *testing.T) {
	request, errCr := NewMeetingRequest(
		&ParamsNewMeetingRequest{
			Duration:  MinutesPerDay + 1,
			Attendees: []string{"b", "a"},
		},
	)
	require.NoError(t, errCr)
	require.Equal(t, MinutesPerDay+1, request.Duration())
	require.True(t, request.Attendees().Contains("a"))
	require.Equal(t, "MeetingRequest{Duration: 1441, Attendees: [a b]}", request.String())
}
