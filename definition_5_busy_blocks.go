package findmeeting

import (
	"slices"
)

// MergeRanges returns the minimal sorted list of blocks covering the same minutes
// as the passed ranges. Overlapping and touching ranges are joined, empty ranges
// cover no minute and are dropped.
// The input slice is not modified.
func MergeRanges(ranges []TimeRange) []TimeRange {
	sorted := slices.DeleteFunc(
		slices.Clone(ranges),
		TimeRange.IsEmpty,
	)
	if len(sorted) == 0 {
		return []TimeRange{}
	}

	slices.SortFunc(sorted, CompareByStart)

	result := make([]TimeRange, 0, len(sorted))

	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.start <= current.end {
			current.end = max(current.end, next.end)

			continue
		}

		result = append(result, current)
		current = next
	}

	return append(result, current)
}

// Complement walks sorted, non overlapping blocks once and returns the gaps
// between them inside the search range.
func Complement(searchRange TimeRange, blocks []TimeRange) []TimeRange {
	result := make([]TimeRange, 0, len(blocks)+1)

	cursor := searchRange.start

	for _, busy := range blocks {
		if busy.end <= cursor {
			continue
		}

		if busy.start >= searchRange.end {
			break
		}

		if cursor < busy.start {
			result = append(
				result,
				TimeRange{
					start: cursor,
					end:   busy.start,
				},
			)
		}

		cursor = max(cursor, busy.end)
	}

	if cursor < searchRange.end {
		result = append(
			result,
			TimeRange{
				start: cursor,
				end:   searchRange.end,
			},
		)
	}

	return result
}

func relevantRanges(events []*Event, attendees Attendees) []TimeRange {
	result := make([]TimeRange, 0, len(events))

	for _, event := range events {
		if event == nil {
			continue
		}

		if event.attendees.Intersects(attendees) {
			result = append(result, event.when)
		}
	}

	return result
}
