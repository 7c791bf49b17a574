// Package format renders numbers and dates the way the dashboard displays them.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guregu/null/v6"
)

// Placeholder is shown for missing values.
const Placeholder = "—"

const dateLayout = "2006-01-02"

var seoul = loadSeoul()

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

func missing(v null.Float) bool {
	return !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0)
}

// Number groups thousands with commas and prints exactly decimals fraction digits.
func Number(v null.Float, decimals int) string {
	if missing(v) {
		return Placeholder
	}
	if decimals < 0 {
		decimals = 0
	}
	return humanize.FormatFloat("#,###."+strings.Repeat("#", decimals), v.Float64)
}

// Pct prints a signed percentage, e.g. "+1.5%". The input is already in percent.
func Pct(v null.Float, decimals int) string {
	if missing(v) {
		return Placeholder
	}
	sign := ""
	if v.Float64 >= 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(v.Float64, 'f', decimals, 64) + "%"
}

// Volume abbreviates share counts with B/M/K suffixes.
func Volume(v null.Float) string {
	if missing(v) {
		return Placeholder
	}
	n := v.Float64
	switch {
	case n >= 1e9:
		return fmt.Sprintf("%.2fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.1fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.0fK", n/1e3)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Corr prints a correlation coefficient with sign and three decimals.
func Corr(v null.Float) string {
	if missing(v) {
		return Placeholder
	}
	sign := ""
	if v.Float64 >= 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(v.Float64, 'f', 3, 64)
}

// Date renders a YYYY-MM-DD day as "2024. 01. 02.". Unparseable input yields "".
func Date(s string) string {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return d.Format("2006. 01. 02.")
}

// DateTime renders an ISO timestamp in Korean 12-hour form, e.g.
// "2024. 01. 02. 오후 03:04". Timestamps without a zone are taken as Seoul time.
func DateTime(s string) string {
	t, ok := parseTimestamp(strings.TrimSpace(s))
	if !ok {
		return ""
	}
	t = t.In(seoul)
	meridiem := "오전"
	hour := t.Hour()
	if hour >= 12 {
		meridiem = "오후"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%s %s %02d:%02d", t.Format("2006. 01. 02."), meridiem, hour, t.Minute())
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02T15:04", dateLayout} {
		if t, err := time.ParseInLocation(layout, s, seoul); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Timestamp converts a YYYY-MM-DD day to UTC-midnight Unix milliseconds.
func Timestamp(date string) (int64, bool) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return 0, false
	}
	return d.UnixMilli(), true
}
