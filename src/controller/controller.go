package controller

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"

	"liftctl/src/dispatcher"
	"liftctl/src/elev"
	"liftctl/src/types"
)

// Controller owns the fleet and the backlog of requests no elevator could take.
// Elevators are referred to by their index, which is also their id.
// A Controller is not safe for concurrent use, see Mgr.
type Controller struct {
	elevators []*elev.ElevState
	backlog   []types.Request
	numFloors int
	nextSeq   uint64
	ticks     uint64
	clock     clockwork.Clock
}

type Option func(c *Controller)

// WithClock sets the clock used to timestamp requests.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

func New(numElevators, numFloors, startFloor, capacity int, opts ...Option) (*Controller, error) {
	switch {
	case numElevators < 0:
		return nil, fmt.Errorf("%w: %d elevators", types.ErrInvalidConfig, numElevators)
	case numFloors < 1:
		return nil, fmt.Errorf("%w: %d floors", types.ErrInvalidConfig, numFloors)
	case startFloor < 1 || startFloor > numFloors:
		return nil, fmt.Errorf("%w: start floor %d", types.ErrInvalidFloor, startFloor)
	case capacity < 1:
		return nil, fmt.Errorf("%w: capacity %d", types.ErrInvalidConfig, capacity)
	}

	c := &Controller{
		elevators: make([]*elev.ElevState, numElevators),
		numFloors: numFloors,
		clock:     clockwork.NewRealClock(),
	}
	for id := 0; id < numElevators; id++ {
		c.elevators[id] = elev.New(id, numFloors, startFloor, capacity)
	}
	for _, opt := range opts {
		opt(c)
	}
	slog.Info("Controller initialized", "elevators", numElevators, "floors", numFloors, "startFloor", startFloor, "capacity", capacity)
	return c, nil
}

func (c *Controller) newRequest(floor int, dir types.Direction) types.Request {
	c.nextSeq++
	return types.Request{
		ID:      uuid.New(),
		Floor:   floor,
		Dir:     dir,
		Seq:     c.nextSeq,
		Created: c.clock.Now(),
	}
}

func (c *Controller) validFloor(floor int) error {
	if floor < 1 || floor > c.numFloors {
		return fmt.Errorf("%w: %d outside [1, %d]", types.ErrInvalidFloor, floor, c.numFloors)
	}
	return nil
}

func (c *Controller) elevator(id int) (*elev.ElevState, error) {
	if id < 0 || id >= len(c.elevators) {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidElevatorID, id)
	}
	return c.elevators[id], nil
}

// RequestElevator handles a hall call. If no elevator can take it right now it is queued in the backlog.
func (c *Controller) RequestElevator(floor int, dir types.Direction) error {
	if err := c.validFloor(floor); err != nil {
		return err
	}
	if dir != types.Up && dir != types.Down {
		return fmt.Errorf("%w: hall call needs Up or Down, got %v", types.ErrInvalidDirection, dir)
	}

	req := c.newRequest(floor, dir)
	if c.assign(req) {
		return nil
	}
	c.backlog = append(c.backlog, req)
	slog.Info("No elevator available, request queued", "request", req.ID, "floor", floor, "dir", dir, "backlog", len(c.backlog))
	return nil
}

// assign hands req to the cheapest elevator and reports whether one took it.
func (c *Controller) assign(req types.Request) bool {
	id, ok := dispatcher.FindAssignee(c.elevators, req)
	if !ok {
		return false
	}
	if err := c.elevators[id].AddRequest(req.Floor, req.Dir); err != nil {
		slog.Error("Assignee rejected request", "elevator", id, "request", req.ID, "error", err)
		return false
	}
	slog.Debug("Request assigned", "elevator", id, "request", req.ID, "seq", req.Seq)
	return true
}

// RequestFloor handles a car call from a rider inside elevator id.
// A call for the floor the elevator is already at is a no-op.
func (c *Controller) RequestFloor(id, floor int) error {
	elevator, err := c.elevator(id)
	if err != nil {
		return err
	}
	if err := c.validFloor(floor); err != nil {
		return err
	}
	if floor == elevator.Floor {
		return nil
	}
	req := c.newRequest(floor, types.None)
	if err := elevator.AddRequest(req.Floor, types.DirectionTo(elevator.Floor, floor)); err != nil {
		return err
	}
	slog.Debug("Car call added", "elevator", id, "request", req.ID, "floor", floor)
	return nil
}

// Tick moves every elevator one step, then retries the backlog in FIFO order.
// Draining stops at the first request that still cannot be assigned.
func (c *Controller) Tick() {
	c.ticks++
	for _, elevator := range c.elevators {
		if floor, arrived := elevator.MoveOneStep(); arrived {
			slog.Debug("Elevator arrived", "tick", c.ticks, "elevator", elevator.ID, "floor", floor)
		}
	}

	drained := 0
	for _, req := range c.backlog {
		if !c.assign(req) {
			break
		}
		drained++
	}
	if drained > 0 {
		c.backlog = c.backlog[drained:]
		slog.Info("Backlog drained", "tick", c.ticks, "assigned", drained, "remaining", len(c.backlog))
	}
}

// SetMaintenance takes an elevator out of service or puts it back.
func (c *Controller) SetMaintenance(id int, on bool) error {
	elevator, err := c.elevator(id)
	if err != nil {
		return err
	}
	elevator.SetMaintenance(on)
	return nil
}

func (c *Controller) Board(id, riders int) error {
	elevator, err := c.elevator(id)
	if err != nil {
		return err
	}
	return elevator.Board(riders)
}

func (c *Controller) Alight(id, riders int) error {
	elevator, err := c.elevator(id)
	if err != nil {
		return err
	}
	return elevator.Alight(riders)
}

func (c *Controller) Status(id int) (types.ElevStatus, error) {
	elevator, err := c.elevator(id)
	if err != nil {
		return types.ElevStatus{}, err
	}
	return elevator.Status(), nil
}

func (c *Controller) Statuses() []types.ElevStatus {
	return lo.Map(c.elevators, func(e *elev.ElevState, _ int) types.ElevStatus {
		return e.Status()
	})
}

func (c *Controller) BacklogSize() int {
	return len(c.backlog)
}

// OldestBacklogAge is how long the head of the backlog has been waiting, zero when empty.
func (c *Controller) OldestBacklogAge() time.Duration {
	if len(c.backlog) == 0 {
		return 0
	}
	return c.clock.Since(c.backlog[0].Created)
}

func (c *Controller) NumElevators() int {
	return len(c.elevators)
}

func (c *Controller) NumFloors() int {
	return c.numFloors
}

func (c *Controller) Ticks() uint64 {
	return c.ticks
}
