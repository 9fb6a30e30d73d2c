package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0198b7a2-4f3c-7a1e-8f3d-1b2c3d4e5f60",
		"C0FFEE00-BEEF-4A5B-8C6D-123456789ABC",
	}
	invalid := []string{"", "not-a-uuid", "0198b7a2-4f3c-7a1e-8f3d", "0198b7a24f3c7a1e8f3d1b2c3d4e5f60"}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-15"); !ok {
		t.Error("expected 2025-06-15 to be valid")
	}
	for _, s := range []string{"2025-13-01", "15-06-2025", "2025-06-15T00:00:00Z", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2025-06-15T08:00:00Z", "2025-06-15T08:00:00+08:00", "2025-06-15T08:00:00.123456Z"}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if _, ok := IsValidDateTime("2025-06-15"); ok {
		t.Error("date-only string should not parse as datetime")
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "22:00", "06:30", "23:59"}
	invalid := []string{"24:00", "7:00", "22:60", "2200", ""}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}
