package wardrobe

import (
	"regexp"
	"strconv"
	"strings"
)

// plainYearSizeLimit is the exclusive upper bound for bare numbers read as
// year sizes ("4" means 4 years).
const plainYearSizeLimit = 14

// newbornMonths is how long newborn sizing is considered to fit.
const newbornMonths = 1

// maxSizeDigits bounds the numbers read from a label. Longer digit runs
// are not sizes and are ignored, which also keeps month arithmetic far
// from overflow.
const maxSizeDigits = 3

var (
	digitsRe     = regexp.MustCompile(`\d+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParseSizeToMaxMonths converts a size label into the oldest age, in months,
// the size is meant for. ok is false when the label is not recognised; such
// items have an unknown size and are never treated as outgrown.
//
// Rules, first match wins:
//   - labels containing "M" are month sizes; the largest number wins ("6-9M" -> 9)
//   - labels containing "T" or "Y" are year sizes; the first number wins ("4T-5T" -> 48)
//   - a bare number below 14 is a year size ("4" -> 48)
//   - "NB" and "NEWBORN" are 1 month
func ParseSizeToMaxMonths(label string) (months int, ok bool) {
	s := whitespaceRe.ReplaceAllString(strings.ToUpper(label), "")
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, "M") {
		if nums := extractInts(s); len(nums) > 0 {
			max := nums[0]
			for _, n := range nums[1:] {
				if n > max {
					max = n
				}
			}
			return max, true
		}
	}

	if strings.ContainsAny(s, "TY") {
		if nums := extractInts(s); len(nums) > 0 {
			return nums[0] * 12, true
		}
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < plainYearSizeLimit {
		return n * 12, true
	}

	if s == "NB" || s == "NEWBORN" {
		return newbornMonths, true
	}

	return 0, false
}

func extractInts(s string) []int {
	matches := digitsRe.FindAllString(s, -1)
	nums := make([]int, 0, len(matches))
	for _, m := range matches {
		if len(m) > maxSizeDigits {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}
