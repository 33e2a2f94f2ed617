package format

import (
	"math"
	"testing"
	"time"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0%"},
		{in: 0.5, want: "50%"},
		{in: 2.0 / 3.0, want: "67%"},
		{in: 1, want: "100%"},
		{in: 1.7, want: "100%"},
		{in: -0.2, want: "0%"},
		{in: math.NaN(), want: "0%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "decimal", got: Decimal(6.26), want: "6.3"},
		{name: "decimal whole", got: Decimal(3.5), want: "3.5"},
		{name: "weight", got: Weight(185), want: "185 lb"},
		{name: "volume", got: Volume(2775), want: "2775"},
		{name: "compact small", got: CompactCount(999), want: "999"},
		{name: "compact thousands", got: CompactCount(12480), want: "12,480"},
		{name: "minutes short", got: Minutes(40), want: "40m"},
		{name: "minutes whole hours", got: Minutes(120), want: "2h"},
		{name: "minutes mixed", got: Minutes(130), want: "2h 10m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTimeRange(t *testing.T) {
	start := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	if got := TimeRange(start, start.Add(40*time.Minute)); got != "07:00-07:40" {
		t.Errorf("TimeRange() = %q, want 07:00-07:40", got)
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	if got := Ago(now.Add(-3*time.Hour), now); got != "3 hours ago" {
		t.Errorf("Ago() = %q, want 3 hours ago", got)
	}
}
