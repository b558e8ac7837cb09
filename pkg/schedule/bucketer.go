package schedule

import (
	"sort"
)

// Bucket groups occurrences by day and orders each bucket ascending by the
// event's start. The sort is stable, so events with an identical start keep
// their input order, and no occurrence is ever dropped or duplicated: the
// flattened output is exactly the input multiset.
func Bucket(occurrences []Occurrence) map[Date][]Event {
	buckets := make(map[Date][]Event)
	for _, occ := range occurrences {
		buckets[occ.Day] = append(buckets[occ.Day], occ.Event)
	}
	for _, events := range buckets {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Start.sortKey() < events[j].Start.sortKey()
		})
	}
	return buckets
}

// Days returns the bucketed days in ascending order.
func Days(buckets map[Date][]Event) []Date {
	days := make([]Date, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}
