package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"study-planner/internal/model"
)

const maxExtractedName = 100

// assignmentKeywords gate which lines are considered at all.
var assignmentKeywords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)homework`),
	regexp.MustCompile(`(?i)hw`),
	regexp.MustCompile(`(?i)assignment`),
	regexp.MustCompile(`(?i)quiz`),
	regexp.MustCompile(`(?i)exam`),
	regexp.MustCompile(`(?i)test`),
	regexp.MustCompile(`(?i)project`),
	regexp.MustCompile(`(?i)due`),
	regexp.MustCompile(`(?i)submit`),
	regexp.MustCompile(`(?i)deadline`),
	regexp.MustCompile(`(?i)lab`),
	regexp.MustCompile(`(?i)midterm`),
	regexp.MustCompile(`(?i)final`),
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// dateShape is one recognised date form. resolve turns submatches into a
// YYYY-MM-DD string or reports that the match is not a date.
type dateShape struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string, fallbackYear int) (string, bool)
}

// dateShapes are tried in order; the first shape with a resolvable match wins.
var dateShapes = []dateShape{
	{
		name:    "month-day",
		pattern: regexp.MustCompile(`(?i)\b([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?\b`),
		resolve: resolveMonthDay,
	},
	{
		name:    "slash",
		pattern: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`),
		resolve: resolveNumeric,
	},
	{
		name:    "dash",
		pattern: regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})(?:-(\d{2,4}))?\b`),
		resolve: resolveNumeric,
	},
}

var (
	dueWord    = regexp.MustCompile(`(?i)\bdue\b:?`)
	whitespace = regexp.MustCompile(`\s+`)
)

// typeRules classify an extracted name; the first matching rule wins.
var typeRules = []struct {
	pattern *regexp.Regexp
	kind    model.TaskType
}{
	{regexp.MustCompile(`quiz|exam|test|midterm|final`), model.TaskQuiz},
	{regexp.MustCompile(`project`), model.TaskProject},
}

// Extractor turns pasted syllabus text into candidate tasks. It is a
// best-effort line scanner: lines it cannot read are skipped silently.
type Extractor struct {
	FallbackYear int
	NewID        func() string
}

func NewExtractor(fallbackYear int, newID func() string) *Extractor {
	return &Extractor{FallbackYear: fallbackYear, NewID: newID}
}

// Extract returns one candidate per line that carries an assignment keyword,
// a resolvable date and a meaningful name. The result may be empty.
func (e *Extractor) Extract(text, course string) []model.Task {
	candidates := []model.Task{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !hasAssignmentKeyword(line) {
			continue
		}
		due, ok := e.findDate(line)
		if !ok {
			continue
		}
		name := deriveName(line)
		if utf8.RuneCountInString(name) <= 3 {
			continue
		}
		kind := ClassifyTask(name)
		candidates = append(candidates, model.Task{
			ID:          e.NewID(),
			Name:        truncate(name, maxExtractedName),
			DueDate:     due,
			Type:        kind,
			Course:      course,
			Description: fmt.Sprintf("%s - %s", course, kind),
		})
	}
	return candidates
}

func hasAssignmentKeyword(line string) bool {
	for _, kw := range assignmentKeywords {
		if kw.MatchString(line) {
			return true
		}
	}
	return false
}

func (e *Extractor) findDate(line string) (string, bool) {
	for _, shape := range dateShapes {
		for _, m := range shape.pattern.FindAllStringSubmatch(line, -1) {
			if date, ok := shape.resolve(m, e.FallbackYear); ok {
				return date, true
			}
		}
	}
	return "", false
}

func resolveMonthDay(m []string, fallbackYear int) (string, bool) {
	month, ok := months[strings.ToLower(m[1])]
	if !ok {
		return "", false
	}
	day, _ := strconv.Atoi(m[2])
	year := fallbackYear
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	return civilDate(year, month, day)
}

func resolveNumeric(m []string, fallbackYear int) (string, bool) {
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year := fallbackYear
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	if month < 1 || month > 12 {
		return "", false
	}
	return civilDate(year, time.Month(month), day)
}

// civilDate rejects dates that time.Date would normalise into another day.
func civilDate(year int, month time.Month, day int) (string, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return "", false
	}
	return t.Format(model.DateLayout), true
}

func deriveName(line string) string {
	name := dateShapes[0].pattern.ReplaceAllStringFunc(line, func(match string) string {
		m := dateShapes[0].pattern.FindStringSubmatch(match)
		if _, ok := months[strings.ToLower(m[1])]; ok {
			return " "
		}
		return match
	})
	for _, shape := range dateShapes[1:] {
		name = shape.pattern.ReplaceAllString(name, " ")
	}
	name = dueWord.ReplaceAllString(name, " ")
	name = whitespace.ReplaceAllString(name, " ")
	return strings.Trim(name, " -–—:,;")
}

// ClassifyTask picks a task type from keywords in name.
func ClassifyTask(name string) model.TaskType {
	lower := strings.ToLower(name)
	for _, rule := range typeRules {
		if rule.pattern.MatchString(lower) {
			return rule.kind
		}
	}
	return model.TaskAssignment
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
