// State types are defined in elev package to make method receivers possible in elev.go.
package elev

import (
	"github.com/tiendc/go-deepcopy"

	"liftctl/src/types"
)

// ElevState represents the state of one elevator cabin.
//   - UpStops is kept ascending, DownStops descending
//   - a floor is never in both stop sets
type ElevState struct {
	ID        int
	Floor     int
	Dir       types.Direction
	Behaviour types.Behaviour
	UpStops   []int
	DownStops []int
	Capacity  int
	Load      int
	NumFloors int
}

// New creates a stopped, idle elevator at startFloor.
func New(id, numFloors, startFloor, capacity int) *ElevState {
	return &ElevState{
		ID:        id,
		Floor:     startFloor,
		Dir:       types.Idle,
		Behaviour: types.Stopped,
		UpStops:   []int{},
		DownStops: []int{},
		Capacity:  capacity,
		NumFloors: numFloors,
	}
}

// Snapshot returns a deep copy that shares no stop slices with the elevator.
func (e *ElevState) Snapshot() *ElevState {
	snap := new(ElevState)
	if err := deepcopy.Copy(snap, e); err != nil {
		panic(err)
	}
	return snap
}

func (e *ElevState) Status() types.ElevStatus {
	snap := e.Snapshot()
	return types.ElevStatus{
		ID:        snap.ID,
		Floor:     snap.Floor,
		Dir:       snap.Dir,
		Behaviour: snap.Behaviour,
		UpStops:   snap.UpStops,
		DownStops: snap.DownStops,
		Load:      snap.Load,
		Capacity:  snap.Capacity,
	}
}
