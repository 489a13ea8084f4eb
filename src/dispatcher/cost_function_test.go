package dispatcher

import (
	"testing"

	"liftctl/src/config"
	"liftctl/src/elev"
	"liftctl/src/types"
)

// movingElevator returns an elevator that has left startFloor heading for target.
func movingElevator(id, startFloor, target int) *elev.ElevState {
	e := elev.New(id, 20, startFloor, 8)
	e.AddRequest(target, types.None)
	e.MoveOneStep()
	return e
}

func TestCost(t *testing.T) {
	maintenance := elev.New(0, 20, 5, 8)
	maintenance.SetMaintenance(true)

	full := elev.New(0, 20, 5, 1)
	full.Board(1)

	tests := []struct {
		name     string
		elevator *elev.ElevState
		req      types.Request
		want     int
	}{
		{"maintenance", maintenance, types.Request{Floor: 5, Dir: types.Up}, Infinite},
		{"full cab", full, types.Request{Floor: 5, Dir: types.Up}, Infinite},
		{"idle", elev.New(0, 20, 1, 8), types.Request{Floor: 10, Dir: types.Up}, 9},
		{"moving towards same direction", movingElevator(0, 1, 15), types.Request{Floor: 10, Dir: types.Up}, 8},
		{"moving towards opposite direction", movingElevator(0, 1, 15), types.Request{Floor: 10, Dir: types.Down}, 8 + config.Penalty},
		{"moving away", movingElevator(0, 10, 15), types.Request{Floor: 3, Dir: types.Up}, 8 + config.Penalty},
		{"passing the floor", movingElevator(0, 9, 15), types.Request{Floor: 10, Dir: types.Up}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cost(tt.elevator, tt.req); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFindAssigneePrefersPassingElevator(t *testing.T) {
	idle := elev.New(0, 20, 1, 8)
	passing := movingElevator(1, 9, 15)
	if passing.Floor != 10 || passing.Dir != types.Up {
		t.Fatalf("Expected elevator moving up at 10, got %d %v", passing.Floor, passing.Dir)
	}

	id, ok := FindAssignee([]*elev.ElevState{idle, passing}, types.Request{Floor: 10, Dir: types.Up})
	if !ok || id != 1 {
		t.Errorf("Expected elevator 1, got %d (%v)", id, ok)
	}
}

func TestFindAssigneeTieGoesToLowestID(t *testing.T) {
	elevators := []*elev.ElevState{
		elev.New(0, 10, 3, 8),
		elev.New(1, 10, 7, 8),
		elev.New(2, 10, 3, 8),
	}
	id, ok := FindAssignee(elevators, types.Request{Floor: 5, Dir: types.Down})
	if !ok || id != 0 {
		t.Errorf("Expected elevator 0, got %d (%v)", id, ok)
	}
}

func TestFindAssigneeNoCandidate(t *testing.T) {
	if _, ok := FindAssignee(nil, types.Request{Floor: 5, Dir: types.Up}); ok {
		t.Error("Expected no assignee for empty fleet")
	}

	e := elev.New(0, 10, 1, 8)
	e.SetMaintenance(true)
	if _, ok := FindAssignee([]*elev.ElevState{e}, types.Request{Floor: 5, Dir: types.Up}); ok {
		t.Error("Expected no assignee when all elevators are in maintenance")
	}
}

func TestPenaltyOutweighsBuildingHeight(t *testing.T) {
	turning := movingElevator(0, 10, 15)
	farIdle := elev.New(1, 20, 20, 8)
	id, _ := FindAssignee([]*elev.ElevState{turning, farIdle}, types.Request{Floor: 2, Dir: types.Up})
	if id != 1 {
		t.Errorf("Expected idle elevator 1, got %d", id)
	}
}
