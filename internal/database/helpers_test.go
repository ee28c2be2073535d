package database

import (
	"database/sql"
	"testing"
	"time"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "?"},
		{3, "?, ?, ?"},
	}
	for _, tt := range tests {
		if got := placeholders(tt.n); got != tt.want {
			t.Errorf("placeholders(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNullHelpers(t *testing.T) {
	if NullStringToString(sql.NullString{}) != "" {
		t.Error("invalid NullString should convert to empty string")
	}
	if NullStringToString(sql.NullString{String: "x", Valid: true}) != "x" {
		t.Error("valid NullString should keep its value")
	}
	if nullString("").Valid {
		t.Error("empty string should be stored as NULL")
	}

	if nullTimeToPtr(sql.NullTime{}) != nil {
		t.Error("invalid NullTime should convert to nil")
	}
	now := time.Now()
	got := nullTimeToPtr(sql.NullTime{Time: now, Valid: true})
	if got == nil || !got.Equal(now) {
		t.Errorf("nullTimeToPtr lost the value: %v", got)
	}
	if timePtrToNull(nil).Valid {
		t.Error("nil time should be stored as NULL")
	}
}
