package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"liftctl/src/config"
	"liftctl/src/controller"
	"liftctl/src/monitor"
	"liftctl/src/timer"
	"liftctl/src/types"
	"liftctl/src/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	numTicks := flag.Int("ticks", 60, "Number of ticks to simulate, 0 runs until interrupted")
	seed := flag.Int64("seed", 1, "Seed for the random request generator")
	flag.Parse()

	if err := run(*configPath, *numTicks, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, numTicks int, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	closeLog, err := utils.InitLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	clock := clockwork.NewRealClock()
	ctrl, err := controller.New(cfg.NumElevators, cfg.NumFloors, cfg.StartFloor, cfg.Capacity, controller.WithClock(clock))
	if err != nil {
		return err
	}
	mgr := controller.StartMgr(ctrl)
	defer mgr.Stop()

	mon, err := monitor.Start(mgr, clock, cfg.MonitorInterval, cfg.BacklogAlertAge)
	if err != nil {
		return err
	}
	defer mon.Shutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := rand.New(rand.NewSource(seed))
	tick := uint64(0)
	timer.Run(ctx, clock, cfg.TickInterval, nil, func() {
		issueRandomRequest(mgr, r, cfg)
		mgr.Tick()
		tick++
		utils.PrintStatus(tick, mgr.Statuses(), mgr.BacklogSize())
		if numTicks > 0 && tick >= uint64(numTicks) {
			cancel()
		}
	})
	slog.Info("Simulation finished", "ticks", tick, "backlog", mgr.BacklogSize())
	return nil
}

// issueRandomRequest plays the role of the riders: a hall call or a car call on most ticks.
func issueRandomRequest(mgr *controller.Mgr, r *rand.Rand, cfg config.Config) {
	floor := r.Intn(cfg.NumFloors) + 1
	var req types.Request
	var err error
	switch n := r.Intn(4); {
	case n == 0 || cfg.NumElevators == 0:
		dir := types.Up
		if floor == cfg.NumFloors || (floor > 1 && r.Intn(2) == 0) {
			dir = types.Down
		}
		req = types.Request{Floor: floor, Dir: dir}
		err = mgr.RequestElevator(floor, dir)
	case n == 1:
		req = types.Request{Floor: floor, Dir: types.None}
		err = mgr.RequestFloor(r.Intn(cfg.NumElevators), floor)
	default:
		return
	}
	if err != nil {
		slog.Warn("Request rejected", "request", utils.FormatRequest(req), "error", err)
		return
	}
	slog.Debug("Request issued", "request", utils.FormatRequest(req))
}
