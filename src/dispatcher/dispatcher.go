package dispatcher

import (
	"log/slog"

	"github.com/samber/lo"

	"liftctl/src/elev"
	"liftctl/src/types"
)

// Bid is the cost one elevator offers for a request.
type Bid struct {
	ElevatorID int
	Cost       int
}

// Bids computes the cost of every elevator, in elevator order.
func Bids(elevators []*elev.ElevState, req types.Request) []Bid {
	return lo.Map(elevators, func(e *elev.ElevState, _ int) Bid {
		return Bid{ElevatorID: e.ID, Cost: Cost(e, req)}
	})
}

// FindAssignee returns the id of the elevator with the lowest cost, ties going to the lowest id.
// It reports false when no elevator can take the request.
func FindAssignee(elevators []*elev.ElevState, req types.Request) (int, bool) {
	bids := Bids(elevators, req)
	if len(bids) == 0 {
		return 0, false
	}
	best := lo.MinBy(bids, func(a, b Bid) bool {
		return a.Cost < b.Cost || (a.Cost == b.Cost && a.ElevatorID < b.ElevatorID)
	})
	if best.Cost == Infinite {
		return 0, false
	}
	slog.Debug("Assigning request to", "elevator", best.ElevatorID, "cost", best.Cost, "floor", req.Floor, "dir", req.Dir, "bids", bids)
	return best.ElevatorID, true
}
