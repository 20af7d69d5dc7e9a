// ABOUTME: Tests for shared CLI helpers
// ABOUTME: Verifies fact flag parsing, value coercion, and truncation

package commands

import "testing"

func TestParseFactFlags(t *testing.T) {
	got, err := parseFactFlags([]string{
		"weather_condition=mưa nhỏ",
		"schedule_empty_or_flexible=true",
		"current_hour=9",
		"temperature=21.5",
	})
	if err != nil {
		t.Fatalf("parseFactFlags() error = %v", err)
	}

	if got["weather_condition"] != "mưa nhỏ" {
		t.Errorf("weather_condition = %v, want string value", got["weather_condition"])
	}
	if got["schedule_empty_or_flexible"] != true {
		t.Errorf("schedule_empty_or_flexible = %v, want bool true", got["schedule_empty_or_flexible"])
	}
	if got["current_hour"] != 9 {
		t.Errorf("current_hour = %v, want int 9", got["current_hour"])
	}
	if got["temperature"] != 21.5 {
		t.Errorf("temperature = %v, want float 21.5", got["temperature"])
	}
}

func TestParseFactFlags_ValueWithEquals(t *testing.T) {
	got, err := parseFactFlags([]string{"note=a=b"})
	if err != nil {
		t.Fatalf("parseFactFlags() error = %v", err)
	}
	if got["note"] != "a=b" {
		t.Errorf("note = %v, want %q", got["note"], "a=b")
	}
}

func TestParseFactFlags_Invalid(t *testing.T) {
	for _, bad := range []string{"novalue", "=orphan"} {
		if _, err := parseFactFlags([]string{bad}); err == nil {
			t.Errorf("parseFactFlags(%q) should fail", bad)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this one is definitely too long", 10, "this on..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
