package wardrobe

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// InvalidDateError is returned when a birth date or current date cannot be parsed.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// ParseDate parses a calendar date ("2006-01-02") or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s, Err: err}
	}
	return t, nil
}

// Age is a years+months breakdown for display.
type Age struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

func (a Age) String() string {
	return fmt.Sprintf("%s, %s", plural(a.Years, "year"), plural(a.Months, "month"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// AgeBreakdown returns the child's age in whole years and months.
// A month that has not completed yet (today's day-of-month earlier than the
// birth day) is not counted when the month difference is zero.
func AgeBreakdown(birth, today time.Time) Age {
	years, months := calendarDiff(birth, today)
	if months < 0 || (months == 0 && today.Day() < birth.Day()) {
		years--
		months += 12
	}
	return Age{Years: years, Months: months}
}

// AgeInMonths returns the day-insensitive age in months used for size
// threshold comparisons. It intentionally skips the day-of-month borrow that
// AgeBreakdown applies.
func AgeInMonths(birth, today time.Time) int {
	years, months := calendarDiff(birth, today)
	return years*12 + months
}

func calendarDiff(birth, today time.Time) (years, months int) {
	return today.Year() - birth.Year(), int(today.Month()) - int(birth.Month())
}
