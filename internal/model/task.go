package model

import "strings"

type TaskID string

// Category is the fixed set of schedule categories the planner knows about.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryCreative Category = "creative"
	CategoryMeeting  Category = "meeting"
	CategoryBreak    Category = "break"
)

var categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryCreative,
	CategoryMeeting,
	CategoryBreak,
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Task is a user-scheduled time-boxed item for a single calendar day.
// Date is YYYY-MM-DD; StartTime/EndTime are wall-clock HH:MM with no timezone.
type Task struct {
	ID          TaskID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Category    Category `json:"category"`
	Completed   bool     `json:"completed"`
	Date        string   `json:"date"`
}

// TaskUpsert is the creation payload. The store stamps ID and Date itself.
type TaskUpsert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Category    string `json:"category"`
}

// ValidClockTime reports whether s is a 24-hour HH:MM string.
func ValidClockTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh <= 23 && mm <= 59
}
