package dispatcher

import (
	"math"

	"liftctl/src/config"
	"liftctl/src/elev"
	"liftctl/src/types"
)

// Infinite is the cost of an elevator that must never take the request.
const Infinite = math.MaxInt

// Cost ranks an elevator for a hall call. Lower is better.
//   - out of service or full cabs are never selected
//   - idle elevators and elevators that will pass the floor in the requested direction cost their distance
//   - everything else pays config.Penalty on top of the distance
func Cost(elevator *elev.ElevState, req types.Request) int {
	if elevator.Behaviour == types.Maintenance || elevator.IsFull() {
		return Infinite
	}

	distance := elevator.DistanceTo(req.Floor)
	if elevator.IsIdle() {
		return distance
	}
	if elevator.Dir == req.Dir && (elevator.IsMovingTowards(req.Floor) || elevator.Floor == req.Floor) {
		return distance
	}
	return distance + config.Penalty
}
