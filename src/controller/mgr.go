package controller

import (
	"time"

	"liftctl/src/types"
)

// CtrlCmd is an operation executed on the controller by the manager goroutine.
type CtrlCmd struct {
	Exec func(c *Controller)
}

// Mgr owns a Controller and serializes access to it.
// Commands from one caller are executed in the order they were issued.
type Mgr struct {
	cmds chan CtrlCmd
	done chan struct{}
}

// StartMgr starts the manager goroutine. The controller must not be used directly afterwards.
func StartMgr(c *Controller) *Mgr {
	mgr := &Mgr{
		cmds: make(chan CtrlCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for cmd := range mgr.cmds {
			cmd.Exec(c)
		}
	}()
	return mgr
}

// Stop ends the manager goroutine after pending commands are executed.
func (mgr *Mgr) Stop() {
	close(mgr.cmds)
	<-mgr.done
}

// call runs fn inside the manager goroutine and waits for its result.
func call[T any](mgr *Mgr, fn func(c *Controller) T) T {
	reply := make(chan T, 1)
	mgr.cmds <- CtrlCmd{
		Exec: func(c *Controller) {
			reply <- fn(c)
		},
	}
	return <-reply
}

func (mgr *Mgr) RequestElevator(floor int, dir types.Direction) error {
	return call(mgr, func(c *Controller) error {
		return c.RequestElevator(floor, dir)
	})
}

func (mgr *Mgr) RequestFloor(id, floor int) error {
	return call(mgr, func(c *Controller) error {
		return c.RequestFloor(id, floor)
	})
}

func (mgr *Mgr) Tick() {
	call(mgr, func(c *Controller) struct{} {
		c.Tick()
		return struct{}{}
	})
}

func (mgr *Mgr) SetMaintenance(id int, on bool) error {
	return call(mgr, func(c *Controller) error {
		return c.SetMaintenance(id, on)
	})
}

func (mgr *Mgr) Board(id, riders int) error {
	return call(mgr, func(c *Controller) error {
		return c.Board(id, riders)
	})
}

func (mgr *Mgr) Alight(id, riders int) error {
	return call(mgr, func(c *Controller) error {
		return c.Alight(id, riders)
	})
}

func (mgr *Mgr) Status(id int) (types.ElevStatus, error) {
	type result struct {
		status types.ElevStatus
		err    error
	}
	res := call(mgr, func(c *Controller) result {
		status, err := c.Status(id)
		return result{status, err}
	})
	return res.status, res.err
}

func (mgr *Mgr) Statuses() []types.ElevStatus {
	return call(mgr, (*Controller).Statuses)
}

func (mgr *Mgr) BacklogSize() int {
	return call(mgr, (*Controller).BacklogSize)
}

func (mgr *Mgr) OldestBacklogAge() time.Duration {
	return call(mgr, (*Controller).OldestBacklogAge)
}
