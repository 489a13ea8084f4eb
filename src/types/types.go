package types

import (
	"time"

	"github.com/google/uuid"
)

type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
	Idle Direction = 0
)

// None is the direction of a car call. It shares its value with Idle.
const None = Idle

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Idle"
	}
}

// DirectionTo returns the travel direction from one floor to another.
func DirectionTo(from, to int) Direction {
	if from < to {
		return Up
	}
	if from > to {
		return Down
	}
	return Idle
}

type Behaviour int

const (
	Stopped Behaviour = iota
	Moving
	Maintenance
)

func (b Behaviour) String() string {
	switch b {
	case Moving:
		return "Moving"
	case Maintenance:
		return "Maintenance"
	default:
		return "Stopped"
	}
}

// Request is a hall call (Dir Up or Down) or a car call (Dir None).
type Request struct {
	ID      uuid.UUID
	Floor   int
	Dir     Direction
	Seq     uint64
	Created time.Time
}

// ElevStatus is a read-only view of one elevator.
type ElevStatus struct {
	ID        int
	Floor     int
	Dir       Direction
	Behaviour Behaviour
	UpStops   []int
	DownStops []int
	Load      int
	Capacity  int
}
