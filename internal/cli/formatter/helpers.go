package formatter

import (
	"strconv"
	"strings"
	"time"
)

// Money formats an amount in BDT with thousands grouping: ৳85,000.
func Money(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var grouped []string
	for len(s) > 3 {
		grouped = append([]string{s[len(s)-3:]}, grouped...)
		s = s[:len(s)-3]
	}
	grouped = append([]string{s}, grouped...)
	out := "৳" + strings.Join(grouped, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// Date renders a calendar date the way clients read it: DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateOrDash renders an optional date, "-" when unset.
func DateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return Date(*t)
}
