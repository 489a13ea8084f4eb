package utils

import (
	"fmt"
	"strings"

	"liftctl/src/types"
)

// FormatStatus renders one elevator as e.g. "E0 F3 Up Moving [5 7|2] 1/8".
func FormatStatus(status types.ElevStatus) string {
	return fmt.Sprintf("E%d F%d %v %v [%s|%s] %d/%d",
		status.ID, status.Floor, status.Dir, status.Behaviour,
		joinFloors(status.UpStops), joinFloors(status.DownStops),
		status.Load, status.Capacity)
}

// PrintStatus is called after every tick of the demo loop.
func PrintStatus(tick uint64, statuses []types.ElevStatus, backlog int) {
	parts := make([]string, len(statuses))
	for i, status := range statuses {
		parts[i] = FormatStatus(status)
	}
	fmt.Printf("tick %4d | %s | backlog %d\n", tick, strings.Join(parts, " | "), backlog)
}

func FormatRequest(req types.Request) string {
	switch req.Dir {
	case types.Up:
		return fmt.Sprintf("HallUp(%d)", req.Floor)
	case types.Down:
		return fmt.Sprintf("HallDown(%d)", req.Floor)
	default:
		return fmt.Sprintf("Cab(%d)", req.Floor)
	}
}

func joinFloors(floors []int) string {
	parts := make([]string, len(floors))
	for i, floor := range floors {
		parts[i] = fmt.Sprint(floor)
	}
	return strings.Join(parts, " ")
}
