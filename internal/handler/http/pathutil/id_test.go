package pathutil

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantID    uint64
		wantError error
	}{
		{name: "valid", raw: "123", wantID: 123},
		{name: "zero", raw: "0", wantID: 0},
		{name: "leading zeros", raw: "007", wantID: 7},
		{name: "max uint64", raw: "18446744073709551615", wantID: 18446744073709551615},
		{name: "overflow", raw: "18446744073709551616", wantError: ErrInvalidID},
		{name: "not a number", raw: "abc", wantError: ErrInvalidID},
		{name: "negative", raw: "-1", wantError: ErrInvalidID},
		{name: "plus sign", raw: "+5", wantError: ErrInvalidID},
		{name: "empty", raw: "", wantError: ErrInvalidID},
		{name: "decimal", raw: "1.5", wantError: ErrInvalidID},
		{name: "whitespace", raw: " 1", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if !errors.Is(err, tt.wantError) {
				t.Fatalf("ParseID(%q) err = %v, want %v", tt.raw, err, tt.wantError)
			}
			if got != tt.wantID {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.wantID)
			}
		})
	}
}
