package main

import "testing"

func TestParseReplayID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"3", 3, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseReplayID(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseReplayID(%q) = %d, %v", tt.in, got, err)
		}
	}
}

func TestRunLength(t *testing.T) {
	tests := []struct {
		ticks, rate int
		want        string
	}{
		{0, 60, "0s"},
		{90 * 60, 60, "1m30s"},
		{45, 30, "2s"},
		{120, 0, "2s"},
	}
	for _, tt := range tests {
		if got := runLength(tt.ticks, tt.rate); got != tt.want {
			t.Errorf("runLength(%d, %d) = %q, want %q", tt.ticks, tt.rate, got, tt.want)
		}
	}
}
