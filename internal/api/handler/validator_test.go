package handler

import (
	"strings"
	"testing"
	"time"
)

func TestValidator_MessagesUseJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createBillRequest{DueDate: "2025-13-40"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"billType is required", "amount is required", "dueDate must be a date"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_OneOfWithSpaces(t *testing.T) {
	v := NewValidator()
	qty := 1.0

	ok := &createInventoryRequest{Name: "Rice", Category: "Pantry", Quantity: &qty, Status: "Out of Stock"}
	if err := v.Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := &createInventoryRequest{Name: "Rice", Category: "Pantry", Quantity: &qty, Status: "Out"}
	if err := v.Validate(bad); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2025-06-01":                time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"2025-06-01T10:30:00Z":      time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		"2025-06-01T12:30:00+02:00": time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := parseDate(in)
		if err != nil {
			t.Fatalf("parseDate(%q): unexpected error: %v", in, err)
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("parseDate(%q): expected %v, got %v", in, want, got)
		}
	}

	if _, err := parseDate("01/06/2025"); err == nil {
		t.Fatalf("expected error for unsupported layout")
	}
}
