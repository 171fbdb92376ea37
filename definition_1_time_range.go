package findmeeting

import (
	"encoding/json"
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour

	StartOfDay = 0
	EndOfDay   = MinutesPerDay - 1 // last minute of the day, inclusive
)

// TimeRange is a half-open interval [start, end) over the minutes of one day.
// The zero value is the empty range at midnight.
type TimeRange struct {
	start int
	end   int
}

var WholeDay = TimeRange{
	start: StartOfDay,
	end:   MinutesPerDay,
}

// FromStartEnd builds a validated range.
// When inclusive, end is the last minute of the range and is moved one minute forward.
func FromStartEnd(start, end int, inclusive bool) (TimeRange, error) {
	adjustedEnd := end + ternary(inclusive, 1, 0)

	if start < StartOfDay {
		return TimeRange{},
			ErrInvalidRange{
				Start: start,
				End:   adjustedEnd,
				Issue: goerrors.ErrNegativeInput{
					InputName: "start",
				},
			}
	}

	if adjustedEnd > MinutesPerDay {
		return TimeRange{},
			ErrInvalidRange{
				Start: start,
				End:   adjustedEnd,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "FromStartEnd",
					InputName:  "end",
					InputValue: adjustedEnd,
					Issue: fmt.Errorf(
						"end past %d minutes",
						MinutesPerDay,
					),
				},
			}
	}

	if start > adjustedEnd {
		return TimeRange{},
			ErrInvalidRange{
				Start: start,
				End:   adjustedEnd,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "FromStartEnd",
					InputName:  "start",
					InputValue: start,
					Issue: errors.New(
						"start greater than end",
					),
				},
			}
	}

	return TimeRange{
			start: start,
			end:   adjustedEnd,
		},
		nil
}

func FromStartDuration(start, duration int) (TimeRange, error) {
	return FromStartEnd(start, start+duration, false)
}

// MustFromStartEnd panics on invalid input, for literals and tests.
func MustFromStartEnd(start, end int, inclusive bool) TimeRange {
	result, errCr := FromStartEnd(start, end, inclusive)
	if errCr != nil {
		panic(errCr)
	}

	return result
}

// TimeInMinutes converts a wall clock time of day into minutes since midnight.
// 24:00 is accepted and maps to MinutesPerDay.
func TimeInMinutes(hours, minutes int) (int, error) {
	if hours < 0 || hours > 24 || minutes < 0 || minutes >= MinutesPerHour || (hours == 24 && minutes > 0) {
		return 0,
			ErrInvalidRange{
				Start: hours*MinutesPerHour + minutes,
				End:   hours*MinutesPerHour + minutes,
				Issue: goerrors.ErrInvalidInput{
					Caller:     "TimeInMinutes",
					InputName:  "hours:minutes",
					InputValue: fmt.Sprintf("%02d:%02d", hours, minutes),
					Issue: errors.New(
						"not a time of day",
					),
				},
			}
	}

	return hours*MinutesPerHour + minutes,
		nil
}

func (r TimeRange) Start() int {
	return r.start
}

func (r TimeRange) End() int {
	return r.end
}

func (r TimeRange) Duration() int {
	return r.end - r.start
}

func (r TimeRange) IsEmpty() bool {
	return r.start == r.end
}

func (r TimeRange) Contains(point int) bool {
	return r.start <= point && point < r.end
}

// ContainsRange reports whether other lies fully inside r.
// An empty range is contained by any range whose bounds include its position.
func (r TimeRange) ContainsRange(other TimeRange) bool {
	return r.start <= other.start && other.end <= r.end
}

// Overlaps reports whether the ranges share at least one minute.
// An empty range holds no minute and overlaps nothing.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}

	return r.start < other.end && other.start < r.end
}

func (r TimeRange) String() string {
	return fmt.Sprintf(
		"[%02d:%02d-%02d:%02d)",

		r.start/MinutesPerHour,
		r.start%MinutesPerHour,
		r.end/MinutesPerHour,
		r.end%MinutesPerHour,
	)
}

type timeRangeJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		timeRangeJSON{
			Start: r.start,
			End:   r.end,
		},
	)
}

func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var raw timeRangeJSON

	if errUnmarshal := json.Unmarshal(data, &raw); errUnmarshal != nil {
		return errUnmarshal
	}

	parsed, errCr := FromStartEnd(raw.Start, raw.End, false)
	if errCr != nil {
		return errCr
	}

	*r = parsed

	return nil
}

// CompareByStart orders by start, then by end. Usable with slices.SortFunc.
func CompareByStart(a, b TimeRange) int {
	if a.start != b.start {
		return ternary(a.start < b.start, -1, 1)
	}

	if a.end != b.end {
		return ternary(a.end < b.end, -1, 1)
	}

	return 0
}

// CompareByEnd orders by end, then by start.
func CompareByEnd(a, b TimeRange) int {
	if a.end != b.end {
		return ternary(a.end < b.end, -1, 1)
	}

	if a.start != b.start {
		return ternary(a.start < b.start, -1, 1)
	}

	return 0
}
