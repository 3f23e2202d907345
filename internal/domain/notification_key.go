package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NotificationKey identifies one reminder firing: an entry on a calendar date.
type NotificationKey struct {
	Date    string
	EntryID string
}

func NewNotificationKey(now time.Time, id EntryID) NotificationKey {
	return NotificationKey{
		Date:    now.Format(dateLayout),
		EntryID: id.String(),
	}
}

func ParseNotificationKey(s string) (NotificationKey, error) {
	date, id, ok := strings.Cut(s, "|")
	if !ok {
		return NotificationKey{}, fmt.Errorf("invalid notification key %q", s)
	}

	if _, err := ParseCalendarDate(date); err != nil {
		return NotificationKey{}, err
	}

	if _, err := EntryIDFromString(id); err != nil {
		return NotificationKey{}, err
	}

	return NotificationKey{Date: date, EntryID: id}, nil
}

func (k NotificationKey) String() string {
	return k.Date + "|" + k.EntryID
}

// NotifiedSet records which reminders already fired. The zero value is not
// usable; callers own the set and pass it into each evaluation.
type NotifiedSet struct {
	keys map[NotificationKey]struct{}
}

func NewNotifiedSet(keys ...NotificationKey) NotifiedSet {
	s := NotifiedSet{keys: make(map[NotificationKey]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}

	return s
}

func (s NotifiedSet) Has(k NotificationKey) bool {
	_, ok := s.keys[k]

	return ok
}

// Add reports whether k was newly inserted.
func (s NotifiedSet) Add(k NotificationKey) bool {
	if s.Has(k) {
		return false
	}

	s.keys[k] = struct{}{}

	return true
}

func (s NotifiedSet) Clone() NotifiedSet {
	c := NotifiedSet{keys: make(map[NotificationKey]struct{}, len(s.keys))}
	for k := range s.keys {
		c.keys[k] = struct{}{}
	}

	return c
}

func (s NotifiedSet) Len() int {
	return len(s.keys)
}

// Keys returns the keys sorted by date, then entry ID.
func (s NotifiedSet) Keys() []NotificationKey {
	keys := make([]NotificationKey, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Date != keys[j].Date {
			return keys[i].Date < keys[j].Date
		}

		return keys[i].EntryID < keys[j].EntryID
	})

	return keys
}

// Prune drops keys for dates other than the given one, bounding the set
// size for long-running loops.
func (s NotifiedSet) Prune(now time.Time) {
	today := now.Format(dateLayout)
	for k := range s.keys {
		if k.Date != today {
			delete(s.keys, k)
		}
	}
}
