package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

const DefaultReminderURL = "/timetable"

// NotificationPayload is the push message body delivered to the browser.
type NotificationPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

func NewClassReminderPayload(entry *ScheduleEntry, url string) NotificationPayload {
	d := entry.Details()

	if url == "" {
		url = DefaultReminderURL
	}

	body := fmt.Sprintf("%s starts at %s", describeSubject(d), d.StartTime)
	if room := strings.TrimSpace(d.RoomNumber); room != "" {
		body += " in " + room
	}

	return NotificationPayload{
		Title: "Upcoming class: " + d.SubjectName,
		Body:  body,
		URL:   url,
	}
}

// Tag groups notifications so a client replaces rather than stacks them.
func NotificationTag(key NotificationKey) string {
	return "class-" + key.EntryID + "-" + key.Date
}

func (p NotificationPayload) JSON() ([]byte, error) {
	return json.Marshal(p)
}

func describeSubject(d EntryDetails) string {
	if d.SubjectCode == "" {
		return d.SubjectName
	}

	return fmt.Sprintf("%s (%s)", d.SubjectName, d.SubjectCode)
}
