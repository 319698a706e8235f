package schedule

import (
	"testing"
	"time"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"standard 5-field", "0 0 * * *"},
		{"6-field with seconds", "0 */5 * * * *"},
		{"descriptor", "@daily"},
		{"weekday names", "0 9 * * MON"},
		{"interval minutes", "30m"},
		{"interval compound", "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.expr, err)
			}
			if spec.Expression != tt.expr {
				t.Errorf("Expression = %q, want %q", spec.Expression, tt.expr)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"garbage", "whenever"},
		{"too few fields", "0 0 *"},
		{"negative interval", "-5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.expr); err == nil {
				t.Errorf("Parse(%q) = nil error, want failure", tt.expr)
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	spec, err := Parse("5m")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Interval != 5*time.Minute {
		t.Errorf("Interval = %v, want 5m", spec.Interval)
	}
}

func TestNextCron(t *testing.T) {
	spec, err := Parse("0 0 * * *")
	if err != nil {
		t.Fatal(err)
	}

	from := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	next := spec.Next(from, 3)

	if len(next) != 3 {
		t.Fatalf("got %d times, want 3", len(next))
	}

	want := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	if !next[0].Equal(want) {
		t.Errorf("next[0] = %v, want %v", next[0], want)
	}
	for i := 1; i < len(next); i++ {
		if !next[i].After(next[i-1]) {
			t.Errorf("next[%d] = %v not after next[%d] = %v", i, next[i], i-1, next[i-1])
		}
	}
}

func TestNextInterval(t *testing.T) {
	spec, err := Parse("10m")
	if err != nil {
		t.Fatal(err)
	}

	from := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	next := spec.Next(from, 2)

	if len(next) != 2 {
		t.Fatalf("got %d times, want 2", len(next))
	}
	if !next[0].Equal(from.Add(10 * time.Minute)) {
		t.Errorf("next[0] = %v", next[0])
	}
	if !next[1].Equal(from.Add(20 * time.Minute)) {
		t.Errorf("next[1] = %v", next[1])
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"* * * * *", "every minute"},
		{"0 * * * *", "every hour"},
		{"0 0 * * *", "daily at midnight"},
		{"0 0 1 * *", "first day of month at midnight"},
		{"0 9 * * MON", "at the hour, hour 9, weekday MON"},
		{"30 8 * * *", "at minute 30, hour 8"},
		{"0 */5 * * * *", "at minute */5"},
		{"15m", "every 15m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			spec, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.expr, err)
			}
			if got := spec.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
