package scheduler

import "sort"

// Group collects the bookings sharing one overview key, either a date or a
// room identifier depending on the grouping mode.
type Group struct {
	Key      string
	Bookings []Booking
}

// SortBookings returns a copy of bookings stably ordered by (Date, Start)
// ascending. Date comparison is lexicographic, which matches chronological
// order for the zero-padded ISO form.
func SortBookings(bookings []Booking) []Booking {
	ordered := make([]Booking, len(bookings))
	copy(ordered, bookings)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].Start < ordered[j].Start
	})
	return ordered
}

// GroupByDate sorts the bookings globally by (Date, Start) and groups them by
// date, so groups appear in chronological order with chronologically ordered
// entries inside each group.
func GroupByDate(bookings []Booking) []Group {
	ordered := SortBookings(bookings)

	index := make(map[string]int, len(ordered))
	groups := make([]Group, 0)
	for _, b := range ordered {
		at, ok := index[b.Date]
		if !ok {
			at = len(groups)
			index[b.Date] = at
			groups = append(groups, Group{Key: b.Date})
		}
		groups[at].Bookings = append(groups[at].Bookings, b)
	}
	return groups
}

// GroupByRoom groups bookings by room, iterating rooms in the canonical order
// supplied by the caller. Bookings referencing a room absent from roomOrder
// are appended after the canonical groups in first-appearance order rather
// than dropped. Rooms without bookings produce no group. Entries inside each
// group are ordered by (Date, Start).
func GroupByRoom(bookings []Booking, roomOrder []string) []Group {
	ordered := SortBookings(bookings)

	byRoom := make(map[string][]Booking, len(roomOrder))
	for _, b := range ordered {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	groups := make([]Group, 0, len(byRoom))
	seen := make(map[string]struct{}, len(roomOrder))
	for _, roomID := range roomOrder {
		if _, dup := seen[roomID]; dup {
			continue
		}
		seen[roomID] = struct{}{}
		if entries, ok := byRoom[roomID]; ok {
			groups = append(groups, Group{Key: roomID, Bookings: entries})
		}
	}
	for _, b := range ordered {
		if _, ok := seen[b.RoomID]; ok {
			continue
		}
		seen[b.RoomID] = struct{}{}
		groups = append(groups, Group{Key: b.RoomID, Bookings: byRoom[b.RoomID]})
	}
	return groups
}

// FilterBookings returns the bookings matching the optional room and date
// constraints. Empty constraint values match everything.
func FilterBookings(bookings []Booking, roomID, date string) []Booking {
	filtered := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if roomID != "" && b.RoomID != roomID {
			continue
		}
		if date != "" && b.Date != date {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}
