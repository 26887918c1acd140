// Package projection shapes fetched messages for display.
// It groups them by day and decides which rows render compact.
package projection

import (
	"sort"
	"team-chat/domain"
	"time"

	"github.com/google/uuid"
)

// CompactThreshold is the largest gap, in whole minutes, under which a
// message from the same member renders without its header.
const CompactThreshold = 5 * time.Minute

const dayKeyLayout = "2006-01-02"

// Entry is a message with its rendering hint.
type Entry struct {
	Message domain.Message
	Compact bool
}

// DayGroup holds the messages of one calendar day, oldest first.
type DayGroup struct {
	Key     string
	Entries []Entry
}

// GroupByDay partitions a newest-first page into calendar days of loc.
// Groups are returned oldest day first and every group is chronological.
// The first entry of a group is never compact.
func GroupByDay(newestFirst []domain.Message, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}
	byKey := make(map[string][]domain.Message)
	var keys []string
	for _, m := range newestFirst {
		key := DayKey(m.CreatedAt, loc)
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append([]domain.Message{m}, byKey[key]...)
	}
	// Keys are zero padded so lexical order is chronological
	sort.Strings(keys)

	groups := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		messages := byKey[key]
		sort.SliceStable(messages, func(i, j int) bool {
			return messages[i].CreatedAt.Before(messages[j].CreatedAt)
		})
		entries := make([]Entry, len(messages))
		for i, m := range messages {
			entries[i] = Entry{Message: m}
			if i > 0 {
				entries[i].Compact = IsCompact(messages[i-1], m)
			}
		}
		groups = append(groups, DayGroup{Key: key, Entries: entries})
	}
	return groups
}

// IsCompact compares a message with the one right before it.
// The gap is truncated to whole minutes first, so 4m59s is compact.
func IsCompact(previous, current domain.Message) bool {
	if previous.MemberID != current.MemberID || previous.MemberID == uuid.Nil {
		return false
	}
	gap := current.CreatedAt.Sub(previous.CreatedAt)
	return gap >= 0 && gap.Truncate(time.Minute) < CompactThreshold
}

// DayKey returns the calendar day of t in loc, as "2006-01-02".
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// DayLabel turns a day key into "Today", "Yesterday" or "Monday, January 2",
// relative to now in the location of now.
func DayLabel(key string, now time.Time) string {
	day, err := time.ParseInLocation(dayKeyLayout, key, now.Location())
	if err != nil {
		return key
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("Monday, January 2")
	}
}
