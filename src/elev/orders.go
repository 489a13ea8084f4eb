package elev

import (
	"slices"

	"github.com/samber/lo"

	"liftctl/src/types"
)

// descending orders DownStops from the highest floor to the lowest.
func descending(a, b int) int {
	return b - a
}

func (e *ElevState) hasStop(floor int) bool {
	return lo.Contains(e.UpStops, floor) || lo.Contains(e.DownStops, floor)
}

func (e *ElevState) hasStops() bool {
	return len(e.UpStops) > 0 || len(e.DownStops) > 0
}

func insertUp(stops []int, floor int) []int {
	i, _ := slices.BinarySearch(stops, floor)
	return slices.Insert(stops, i, floor)
}

func insertDown(stops []int, floor int) []int {
	i, _ := slices.BinarySearchFunc(stops, floor, descending)
	return slices.Insert(stops, i, floor)
}

// clearStop removes floor from whichever stop set holds it.
func (e *ElevState) clearStop(floor int) {
	if i := slices.Index(e.UpStops, floor); i >= 0 {
		e.UpStops = slices.Delete(e.UpStops, i, i+1)
	}
	if i := slices.Index(e.DownStops, floor); i >= 0 {
		e.DownStops = slices.Delete(e.DownStops, i, i+1)
	}
}

// upStopAbove returns the smallest up stop at or above the current floor.
func (e *ElevState) upStopAbove() (int, bool) {
	i, _ := slices.BinarySearch(e.UpStops, e.Floor)
	if i < len(e.UpStops) {
		return e.UpStops[i], true
	}
	return 0, false
}

// downStopBelow returns the largest down stop at or below the current floor.
func (e *ElevState) downStopBelow() (int, bool) {
	i, _ := slices.BinarySearchFunc(e.DownStops, e.Floor, descending)
	if i < len(e.DownStops) {
		return e.DownStops[i], true
	}
	return 0, false
}

// nextTarget picks the next floor to serve.
//  1. Keep going in the current direction while there are stops that way.
//  2. Otherwise turn around at the extreme stop of the opposite set.
//  3. Otherwise fetch the stop of the own set that was left behind.
func (e *ElevState) nextTarget() (int, bool) {
	switch e.Dir {
	case types.Down:
		if floor, ok := e.downStopBelow(); ok {
			return floor, true
		}
		if len(e.UpStops) > 0 {
			return e.UpStops[0], true
		}
		if len(e.DownStops) > 0 {
			return e.DownStops[0], true
		}
	default:
		if floor, ok := e.upStopAbove(); ok {
			return floor, true
		}
		if len(e.DownStops) > 0 {
			return e.DownStops[0], true
		}
		if len(e.UpStops) > 0 {
			return e.UpStops[0], true
		}
	}
	return 0, false
}
