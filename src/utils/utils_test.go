package utils

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"liftctl/src/types"
)

func TestFormatStatus(t *testing.T) {
	status := types.ElevStatus{
		ID:        1,
		Floor:     3,
		Dir:       types.Up,
		Behaviour: types.Moving,
		UpStops:   []int{5, 7},
		DownStops: []int{2},
		Load:      1,
		Capacity:  8,
	}
	if got, want := FormatStatus(status), "E1 F3 Up Moving [5 7|2] 1/8"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatRequest(t *testing.T) {
	tests := []struct {
		req  types.Request
		want string
	}{
		{types.Request{Floor: 4, Dir: types.Up}, "HallUp(4)"},
		{types.Request{Floor: 2, Dir: types.Down}, "HallDown(2)"},
		{types.Request{Floor: 9, Dir: types.None}, "Cab(9)"},
	}
	for _, tt := range tests {
		if got := FormatRequest(tt.req); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info")
	logger.Debug("hidden")
	logger.Info("shown", "floor", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "floor=3") {
		t.Errorf("Unexpected log output %q", out)
	}
	if parseLevel("DEBUG") != slog.LevelDebug || parseLevel("bogus") != slog.LevelInfo {
		t.Error("Unexpected level parsing")
	}
}
