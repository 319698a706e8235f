package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Spec is a parsed schedule expression: either a cron pattern (5 or 6
// fields, or a descriptor like @daily) or a fixed interval such as "5m".
type Spec struct {
	Expression string
	Interval   time.Duration // non-zero for interval expressions
	sched      cron.Schedule // nil for interval expressions
}

var (
	standardParser = cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	secondsParser = cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
)

// Parse validates a schedule expression. Cron patterns are tried first
// (standard 5-field, then 6-field with a seconds column), falling back to
// a Go duration string for intervals.
func Parse(expr string) (*Spec, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("schedule expression is empty")
	}

	if sched, err := standardParser.Parse(expr); err == nil {
		return &Spec{Expression: expr, sched: sched}, nil
	}
	if sched, err := secondsParser.Parse(expr); err == nil {
		return &Spec{Expression: expr, sched: sched}, nil
	}
	if d, err := time.ParseDuration(expr); err == nil && d > 0 {
		return &Spec{Expression: expr, Interval: d}, nil
	}

	return nil, fmt.Errorf("not a valid cron pattern (5 or 6 fields) or interval: %q", expr)
}

// Next returns the next count run times after from.
func (s *Spec) Next(from time.Time, count int) []time.Time {
	times := make([]time.Time, 0, count)
	t := from
	for i := 0; i < count; i++ {
		if s.Interval > 0 {
			t = t.Add(s.Interval)
		} else {
			t = s.sched.Next(t)
			if t.IsZero() {
				break
			}
		}
		times = append(times, t)
	}
	return times
}

// Describe returns a human-readable summary of the schedule.
func (s *Spec) Describe() string {
	if s.Interval > 0 {
		return fmt.Sprintf("every %s", s.Interval)
	}

	parts := strings.Fields(s.Expression)
	if len(parts) == 6 {
		// Drop the seconds column for the summary
		parts = parts[1:]
	}
	if len(parts) != 5 {
		return s.Expression
	}

	minute, hour, dayOfMonth, month, dayOfWeek := parts[0], parts[1], parts[2], parts[3], parts[4]
	pattern := strings.Join(parts, " ")

	// Common patterns
	switch pattern {
	case "* * * * *":
		return "every minute"
	case "0 * * * *":
		return "every hour"
	case "0 0 * * *":
		return "daily at midnight"
	case "0 0 1 * *":
		return "first day of month at midnight"
	}

	// Generic description
	desc := []string{}

	if minute == "0" {
		desc = append(desc, "at the hour")
	} else if minute == "*" {
		desc = append(desc, "every minute")
	} else {
		desc = append(desc, fmt.Sprintf("at minute %s", minute))
	}

	if hour != "*" {
		desc = append(desc, fmt.Sprintf("hour %s", hour))
	}

	if dayOfMonth != "*" {
		desc = append(desc, fmt.Sprintf("day %s", dayOfMonth))
	}

	if month != "*" {
		desc = append(desc, fmt.Sprintf("month %s", month))
	}

	if dayOfWeek != "*" {
		desc = append(desc, fmt.Sprintf("weekday %s", dayOfWeek))
	}

	return strings.Join(desc, ", ")
}
