package experience

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateParser turns a date fragment such as "Jan 2020" or "2019" into a time.
type DateParser interface {
	ParseDate(text string) (time.Time, bool)
}

var monthYearPattern = regexp.MustCompile(`^([a-z]{3})[a-z]*\.?\s*(\d{4})$`)

// LayoutParser understands month-year and bare-year fragments and falls back
// to dateparse for anything else.
type LayoutParser struct {
	// Location used for the parsed dates. Defaults to UTC.
	Location *time.Location
}

// ParseDate implements DateParser.
func (p LayoutParser) ParseDate(text string) (time.Time, bool) {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	value := strings.ToLower(strings.TrimSpace(text))
	if value == "" {
		return time.Time{}, false
	}

	if m := monthYearPattern.FindStringSubmatch(value); m != nil {
		if t, err := time.ParseInLocation("Jan 2006", fmt.Sprintf("%s %s", m[1], m[2]), loc); err == nil {
			return t, true
		}
	}

	if t, err := time.ParseInLocation("2006", value, loc); err == nil {
		return t, true
	}

	t, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
