package domain

import (
	"fmt"
	"strings"
)

type ResolveResult struct {
	Entries []EntryDetails
	Errors  []string
}

func (r ResolveResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ResolveCourses expands every course's slot expression into one entry per
// meeting of each code. Output order is course order, then code order
// within the expression, then meeting order within the code. Unknown codes
// are reported in Errors and produce no entries; duplicated codes are kept.
func ResolveCourses(courses []CourseInput) ResolveResult {
	result := ResolveResult{
		Entries: make([]EntryDetails, 0, len(courses)*2),
		Errors:  make([]string, 0),
	}

	for _, course := range courses {
		for _, token := range SplitSlotExpression(course.SlotExpression) {
			blocks, ok := LookupSlot(token)
			if !ok {
				result.Errors = append(result.Errors, InvalidSlotMessage(token, course.SubjectName))

				continue
			}

			for _, b := range blocks {
				result.Entries = append(result.Entries, EntryDetails{
					SubjectName: course.SubjectName,
					SubjectCode: course.SubjectCode,
					SessionType: course.SessionType,
					SlotCode:    token,
					SlotLabel:   course.SlotExpression,
					RoomNumber:  course.RoomNumber,
					Credit:      course.Credit,
					Day:         b.Day,
					StartTime:   b.StartTime,
					EndTime:     b.EndTime,
				})
			}
		}
	}

	return result
}

// SplitSlotExpression splits on "+" and normalizes each code. An empty
// expression yields a single empty token.
func SplitSlotExpression(expr string) []string {
	parts := strings.Split(expr, "+")

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.ToUpper(strings.TrimSpace(p)))
	}

	return tokens
}

func InvalidSlotMessage(code, subjectName string) string {
	return fmt.Sprintf("Invalid slot \"%s\" for subject \"%s\"", code, subjectName)
}
