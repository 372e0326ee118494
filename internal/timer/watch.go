package timer

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// WatchOptions configures a live countdown.
type WatchOptions struct {
	Interval time.Duration
	Now      func() time.Time
	// Signals stops the watch on SIGINT/SIGTERM when true.
	Signals bool
}

// Watch redraws the countdown every interval until ctx is cancelled, a
// signal arrives or the goal is reached. It returns true if the goal was
// reached while watching.
func Watch(ctx context.Context, cd *CountdownDisplay, g Goal, opts WatchOptions) bool {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var sigCh chan os.Signal
	if opts.Signals {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)
	}

	render := func() bool {
		now := opts.Now()
		cd.MoveCursorHome()
		cd.ClearScreen()
		fmt.Fprintln(cd.Writer, cd.Render(g, now))
		return g.Reached(now)
	}

	if render() {
		return true
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-sigCh:
			return false
		case <-ticker.C:
			if render() {
				return true
			}
		}
	}
}
