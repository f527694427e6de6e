package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.February || got.Day() != 29 {
		t.Errorf("unexpected parse result: %v", got)
	}

	if _, err := ParseDate("02/29/2024"); err == nil {
		t.Error("expected error for non-ISO format")
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-1-1", false},
		{"yesterday", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestResolveDate(t *testing.T) {
	if got, err := ResolveDate("2024-05-05"); err != nil || got != "2024-05-05" {
		t.Errorf("explicit date should pass through, got %q, %v", got, err)
	}

	if got, err := ResolveDate(""); err != nil || got != Today() {
		t.Errorf("empty date should resolve to today, got %q, %v", got, err)
	}

	if _, err := ResolveDate("not-a-date"); err == nil {
		t.Error("expected error for invalid date")
	}
}
