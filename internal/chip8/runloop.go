package chip8

import (
	"log"
	"time"
)

// Loop is the frame-driven run loop: a cooperative, single-task driver
// that alternates a fixed 1/Speed delay with the Display's frame signal,
// running one Cycle after both resolve. It works with any Display,
// including headless test fakes.
type Loop struct {
	machine *Machine
	display Display
	logger  *log.Logger

	stopC chan struct{}
	done  chan struct{}
}

// NewLoop returns a Loop driving machine against display. A nil logger
// falls back to log.Default().
func NewLoop(machine *Machine, display Display, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		machine: machine,
		display: display,
		logger:  logger,
		stopC:   make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run drives cycles until Stop is called or a Cycle returns an error.
// Cycle is a no-op while halted (Fx0A waiting on a keypress), so a halted
// machine simply ticks along, giving the host's keyboard a chance to
// deliver the key that releases it. Stop is observed at both waits (the
// tick and the frame signal): the loop stops waiting and returns. A Cycle
// that has started always runs to completion first.
func (l *Loop) Run() error {
	defer close(l.done)

	ticker := time.NewTicker(time.Second / Speed)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopC:
			return nil
		case <-ticker.C:
		}

		select {
		case <-l.stopC:
			return nil
		case <-l.display.NextFrame():
		}

		if err := l.machine.Cycle(l.display); err != nil {
			l.logger.Printf("chip8: cycle error, stopping: %v", err)
			return err
		}
	}
}

// Stop asks the loop to exit at the next suspension point. It is safe to
// call Stop more than once or before Run starts.
func (l *Loop) Stop() {
	select {
	case <-l.stopC:
		// already stopped
	default:
		close(l.stopC)
	}
}

// Done returns a channel that is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
