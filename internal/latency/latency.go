// Package latency simulates the network delay of a future remote backend.
// Every domain service operation sleeps its configured delay before touching
// the store, so operations complete in delay-duration order rather than
// invocation order, exactly as a real network boundary would behave.
package latency

import "time"

// Kind names one class of operation with its own delay.
type Kind string

// Operation kinds and their default delays.
const (
	KindGet        Kind = "get"
	KindList       Kind = "list"
	KindFilter     Kind = "filter"
	KindCreate     Kind = "create"
	KindSend       Kind = "send"
	KindUpdate     Kind = "update"
	KindDelete     Kind = "delete"
	KindToggle     Kind = "toggle"
	KindSearch     Kind = "search"
	KindMembership Kind = "membership"
	KindCatalog    Kind = "catalog"
)

// DefaultProfile mirrors the per-operation delays of the mock backend.
func DefaultProfile() map[Kind]time.Duration {
	return map[Kind]time.Duration{
		KindGet:        200 * time.Millisecond,
		KindList:       300 * time.Millisecond,
		KindFilter:     250 * time.Millisecond,
		KindCreate:     400 * time.Millisecond,
		KindSend:       300 * time.Millisecond,
		KindUpdate:     300 * time.Millisecond,
		KindDelete:     250 * time.Millisecond,
		KindToggle:     200 * time.Millisecond,
		KindSearch:     350 * time.Millisecond,
		KindMembership: 200 * time.Millisecond,
		KindCatalog:    100 * time.Millisecond,
	}
}

// Simulator sleeps a per-kind artificial delay. Delays are deliberately not
// cancellable: the mock backend's timers cannot be aborted either, which is
// why callers must tolerate late resolutions instead of relying on
// cancellation.
type Simulator struct {
	profile map[Kind]time.Duration
	scale   float64
}

// New constructs a simulator over the given profile. A scale of zero (or
// below) disables delays entirely, which is what tests use.
func New(profile map[Kind]time.Duration, scale float64) *Simulator {
	if profile == nil {
		profile = DefaultProfile()
	}
	return &Simulator{profile: profile, scale: scale}
}

// Instant returns a simulator that never sleeps.
func Instant() *Simulator {
	return New(nil, 0)
}

// Sleep blocks for the configured delay of the given kind.
func (s *Simulator) Sleep(kind Kind) {
	if s == nil || s.scale <= 0 {
		return
	}

	delay, ok := s.profile[kind]
	if !ok {
		return
	}

	time.Sleep(time.Duration(float64(delay) * s.scale))
}

// Uniform returns a simulator that sleeps the same delay for every kind.
// Tests use distinct uniform simulators to pin down completion ordering.
func Uniform(delay time.Duration) *Simulator {
	profile := make(map[Kind]time.Duration, len(DefaultProfile()))
	for kind := range DefaultProfile() {
		profile[kind] = delay
	}
	return New(profile, 1)
}
