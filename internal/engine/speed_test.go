package engine

import (
	"testing"
	"time"
)

func TestSpeedIntervals(t *testing.T) {
	tests := []struct {
		tier     SpeedTier
		expected time.Duration
	}{
		{SpeedSlow, 300 * time.Millisecond},
		{SpeedNormal, 200 * time.Millisecond},
		{SpeedFast, 150 * time.Millisecond},
		{SpeedInsane, 100 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := tc.tier.Interval(); got != tc.expected {
			t.Errorf("%s: Interval() = %v, expected %v", tc.tier, got, tc.expected)
		}
	}
}

func TestSpeedsOrdering(t *testing.T) {
	speeds := Speeds()
	if len(speeds) != 4 {
		t.Fatalf("Expected 4 tiers, got %d", len(speeds))
	}
	for i := 1; i < len(speeds); i++ {
		if speeds[i].Interval() >= speeds[i-1].Interval() {
			t.Errorf("Tiers not ordered slowest to fastest at index %d", i)
		}
	}
}

func TestParseSpeed(t *testing.T) {
	for _, tier := range Speeds() {
		got, err := ParseSpeed(string(tier))
		if err != nil {
			t.Errorf("ParseSpeed(%q) failed: %v", tier, err)
		}
		if got != tier {
			t.Errorf("ParseSpeed(%q) = %v", tier, got)
		}
	}

	if _, err := ParseSpeed("warp"); err == nil {
		t.Error("Expected error for unknown tier name")
	}
	if _, err := ParseSpeed(""); err == nil {
		t.Error("Expected error for empty tier name")
	}
}
