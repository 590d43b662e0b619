package leave

import "time"

type ClassificationKind string

const (
	// KindHoliday: the clicked day is a fixed holiday. Holidays win over
	// request spans; the covered request stays reachable through list views.
	KindHoliday ClassificationKind = "holiday"
	// KindExisting: the clicked day falls inside an existing request span.
	KindExisting ClassificationKind = "existing"
	// KindFreeDay: neither holiday nor request; a fresh draft is offered.
	KindFreeDay ClassificationKind = "free"
)

// Classification is the result of mapping a clicked calendar date to the
// UI mode that should open for it.
type Classification struct {
	Kind    ClassificationKind
	Holiday *Holiday
	Request *LeaveRequest
	Draft   *LeaveRequest
}

// Classify maps a clicked date to a holiday, the first covering request in
// store order, or a new single-day draft. Comparison is at day granularity.
func Classify(clicked time.Time, holidays *HolidaySet, store *Store) Classification {
	day := DayStart(clicked)

	if holidays != nil {
		if hit, ok := holidays.Find(day); ok {
			return Classification{Kind: KindHoliday, Holiday: &hit}
		}
	}

	if store != nil {
		if req, ok := store.FindCovering(day); ok {
			return Classification{Kind: KindExisting, Request: &req}
		}
	}

	draft := &LeaveRequest{Start: day, End: day, Status: StatusPending}
	return Classification{Kind: KindFreeDay, Draft: draft}
}
