package sheets

import (
	"testing"
	"time"
)

func TestDefaultSheetName(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2025, 6, 21, 4, 52, 27, 0, time.UTC), "2025_06"},
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), "2025_12"},
		{time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC), "2026_01"},
	}

	for _, tt := range tests {
		if got := DefaultSheetName(tt.now); got != tt.want {
			t.Errorf("DefaultSheetName(%v) = %q, want %q", tt.now, got, tt.want)
		}
	}
}

func TestRowStrings(t *testing.T) {
	row := []interface{}{"plain", "", 42, true}
	got := rowStrings(row)

	want := []string{"plain", "", "42", "true"}
	if len(got) != len(want) {
		t.Fatalf("rowStrings() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rowStrings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
