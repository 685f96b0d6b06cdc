// Package weekid handles ISO year-week labels anchored to the Asia/Riyadh
// calendar. Week ids key both storage paths and RNG seeding, so their
// successor computation must be exact.
package weekid

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const zoneName = "Asia/Riyadh"

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		// Riyadh has no DST; a fixed +03 offset is equivalent.
		return time.FixedZone(zoneName, 3*3600)
	}
	return loc
}

// Location returns the experiment's local time zone.
func Location() *time.Location {
	return location
}

var idPattern = regexp.MustCompile(`^(?:(\d{4})-W(\d{1,2})|Week_(\d{4})_(\d{1,2}))$`)

// Parse accepts the canonical "2025-W46" form and the legacy "Week_2025_46"
// form found in stored data.
func Parse(id string) (year, week int, err error) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid week id %q", id)
	}
	ys, ws := m[1], m[2]
	if ys == "" {
		ys, ws = m[3], m[4]
	}
	year, _ = strconv.Atoi(ys)
	week, _ = strconv.Atoi(ws)
	if week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("week %d out of range in %q", week, id)
	}
	return year, week, nil
}

// Format renders the canonical zero-padded label, e.g. "2025-W46".
func Format(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Monday returns the Monday of the ISO week named by id, at midnight local
// time.
func Monday(id string) (time.Time, error) {
	year, week, err := Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	// January 4 always falls in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, location)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	week1Monday := jan4.AddDate(0, 0, 1-wd)
	return week1Monday.AddDate(0, 0, (week-1)*7), nil
}

// Next advances a week id by seven days and re-derives the ISO year/week,
// handling year rollover.
func Next(id string) (string, error) {
	mon, err := Monday(id)
	if err != nil {
		return "", err
	}
	y, w := mon.AddDate(0, 0, 7).ISOWeek()
	return Format(y, w), nil
}

// Sequence builds total week ids forward from start. With includeStart the
// start week is the first element; otherwise the sequence begins at its
// successor.
func Sequence(start string, total int, includeStart bool) ([]string, error) {
	if total <= 0 {
		return nil, nil
	}
	seq := make([]string, 0, total)
	cur := start
	if includeStart {
		if _, _, err := Parse(cur); err != nil {
			return nil, err
		}
		seq = append(seq, cur)
	}
	for len(seq) < total {
		next, err := Next(cur)
		if err != nil {
			return nil, err
		}
		cur = next
		seq = append(seq, cur)
	}
	return seq, nil
}

// Stamp formats a Date/Time pair ("YYYY-MM-DD", "HH:MM:SS") in local time.
func Stamp(now time.Time) (string, string) {
	t := now.In(location)
	return t.Format("2006-01-02"), t.Format("15:04:05")
}
