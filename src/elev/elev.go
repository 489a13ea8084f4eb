package elev

import (
	"fmt"
	"log/slog"

	"liftctl/src/types"
)

// AddRequest schedules a stop at floor.
//   - dir Up, or None above the current floor, goes to UpStops, everything else to DownStops
//   - a floor already scheduled in either set is left as is
//   - an idle elevator takes the direction towards the new stop
func (e *ElevState) AddRequest(floor int, dir types.Direction) error {
	if floor < 1 || floor > e.NumFloors {
		return fmt.Errorf("%w: %d outside [1, %d]", types.ErrInvalidFloor, floor, e.NumFloors)
	}
	if e.Behaviour == types.Maintenance {
		return fmt.Errorf("%w: elevator %d", types.ErrOutOfService, e.ID)
	}
	if e.hasStop(floor) {
		return nil
	}

	setDir := types.Down
	if dir == types.Up || (dir == types.None && floor > e.Floor) {
		setDir = types.Up
	}
	if setDir == types.Up {
		e.UpStops = insertUp(e.UpStops, floor)
	} else {
		e.DownStops = insertDown(e.DownStops, floor)
	}

	if e.Dir == types.Idle {
		e.Dir = types.DirectionTo(e.Floor, floor)
		if e.Dir == types.Idle {
			e.Dir = setDir
		}
	}
	slog.Debug("Stop added", "elevator", e.ID, "floor", floor, "set", setDir, "upStops", e.UpStops, "downStops", e.DownStops)
	return nil
}

// MoveOneStep advances the elevator by at most one floor.
// It returns the floor that was served if the elevator arrived at its target.
func (e *ElevState) MoveOneStep() (int, bool) {
	if e.Behaviour == types.Maintenance {
		return 0, false
	}
	target, ok := e.nextTarget()
	if !ok {
		e.Dir = types.Idle
		e.Behaviour = types.Stopped
		return 0, false
	}

	if target != e.Floor {
		e.Dir = types.DirectionTo(e.Floor, target)
		e.Floor += int(e.Dir)
		e.Behaviour = types.Moving
	}
	if e.Floor != target {
		return 0, false
	}

	e.clearStop(target)
	e.Behaviour = types.Stopped
	if !e.hasStops() {
		e.Dir = types.Idle
	}
	slog.Debug("Stopping at floor", "elevator", e.ID, "floor", target, "direction", e.Dir)
	return target, true
}

func (e *ElevState) IsIdle() bool {
	return !e.hasStops() && e.Behaviour == types.Stopped
}

func (e *ElevState) DistanceTo(floor int) int {
	return abs(e.Floor - floor)
}

func (e *ElevState) IsMovingTowards(floor int) bool {
	return (e.Dir == types.Up && floor > e.Floor) || (e.Dir == types.Down && floor < e.Floor)
}

// SetMaintenance takes the elevator out of service or back in.
// Pending stops are kept and served once the elevator is back in service.
func (e *ElevState) SetMaintenance(on bool) {
	switch {
	case on:
		e.Behaviour = types.Maintenance
	case e.Behaviour == types.Maintenance:
		e.Behaviour = types.Stopped
	default:
		return
	}
	slog.Info("Maintenance state changed", "elevator", e.ID, "maintenance", on)
}

// Board adds riders to the cab.
func (e *ElevState) Board(riders int) error {
	return e.setLoad(e.Load + riders)
}

// Alight removes riders from the cab.
func (e *ElevState) Alight(riders int) error {
	return e.setLoad(e.Load - riders)
}

func (e *ElevState) setLoad(load int) error {
	if load < 0 || load > e.Capacity {
		return fmt.Errorf("%w: load %d, capacity %d", types.ErrOverCapacity, load, e.Capacity)
	}
	e.Load = load
	return nil
}

// IsFull reports whether the cab can take no more riders.
func (e *ElevState) IsFull() bool {
	return e.Load >= e.Capacity
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
