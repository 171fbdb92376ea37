package findmeeting

import (
	"time"

	"go.uber.org/zap"
)

// Query returns the maximal windows of the day, sorted by start, in which no event
// sharing an attendee with the request takes place and which last at least the
// requested duration.
// Inputs are read only. The result is freshly allocated and never nil.
func Query(events []*Event, request *MeetingRequest) []TimeRange {
	windows, _ := resolve(events, request)

	return windows
}

// resolve returns the windows together with the busy blocks they were cut from.
// The blocks are empty when the request is answered without looking at events.
func resolve(events []*Event, request *MeetingRequest) ([]TimeRange, []TimeRange) {
	if request == nil || request.duration > WholeDay.Duration() {
		return []TimeRange{}, []TimeRange{}
	}

	if request.attendees.Len() == 0 {
		return []TimeRange{WholeDay}, []TimeRange{}
	}

	busy := BusyBlocks(events, request)
	free := Complement(WholeDay, busy)

	result := free[:0]

	for _, window := range free {
		if window.Duration() >= request.duration {
			result = append(result, window)
		}
	}

	return result, busy
}

// BusyBlocks returns the merged ranges occupied by events relevant to the request.
func BusyBlocks(events []*Event, request *MeetingRequest) []TimeRange {
	if request == nil {
		return []TimeRange{}
	}

	return MergeRanges(
		relevantRanges(events, request.attendees),
	)
}

// FindMeetingQuery runs Query and reports what it did through a structured logger.
// It holds no mutable state and can be shared between goroutines.
type FindMeetingQuery struct {
	logger *zap.Logger
}

type ParamsNewFindMeetingQuery struct {
	Logger *zap.Logger
}

func NewFindMeetingQuery(params *ParamsNewFindMeetingQuery) *FindMeetingQuery {
	logger := zap.NewNop()

	if params != nil && params.Logger != nil {
		logger = params.Logger
	}

	return &FindMeetingQuery{
		logger: logger.Named("findmeeting"),
	}
}

func (q *FindMeetingQuery) Query(events []*Event, request *MeetingRequest) []TimeRange {
	if request == nil {
		q.logger.Warn("nil meeting request")

		return []TimeRange{}
	}

	timeStart := time.Now()

	result, busy := resolve(events, request)

	if ce := q.logger.Check(zap.DebugLevel, "query resolved"); ce != nil {
		ce.Write(
			zap.Int("events", len(events)),
			zap.Stringer("request", request),
			zap.Stringers("busy", busy),
			zap.Stringers("windows", result),
			zap.Duration("took", time.Since(timeStart)),
		)
	}

	return result
}
