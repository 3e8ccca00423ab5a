// Package process holds the state that lives for the whole process: start
// time, build version and environment. It is created once in main and passed
// to whatever needs to report on it.
package process

import "time"

// Clock returns the current instant.
type Clock func() time.Time

// Process is the process-lifecycle context.
type Process struct {
	Version     string
	Environment string

	startedAt time.Time
	clock     Clock
}

// New records the start instant using the wall clock.
func New(version, environment string) *Process {
	return NewWithClock(version, environment, time.Now)
}

// NewWithClock is New with an injectable clock.
func NewWithClock(version, environment string, clock Clock) *Process {
	if clock == nil {
		clock = time.Now
	}
	return &Process{
		Version:     version,
		Environment: environment,
		startedAt:   clock(),
		clock:       clock,
	}
}

// Now returns the current instant from the process clock.
func (p *Process) Now() time.Time {
	return p.clock()
}

// StartedAt returns the instant New was called.
func (p *Process) StartedAt() time.Time {
	return p.startedAt
}

// Uptime returns seconds since start. time.Now readings carry a monotonic
// component, so the value never goes backwards on wall clock changes.
func (p *Process) Uptime() float64 {
	d := p.clock().Sub(p.startedAt)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
