package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-01-15", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{input: "2024-01-15T13:45:00Z", want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{input: "15/01/2024", wantErr: true},
		{input: "2024-13-01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse date: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-02-01" {
		t.Fatalf("expected 2024-02-01, got %s", got)
	}
}
