package service

import (
	"sync/atomic"
	"time"
)

// State tracks process readiness for the health endpoints.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	lastRequestUnix atomic.Int64 // unix seconds
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

func (s *State) TouchRequest(t time.Time) { s.lastRequestUnix.Store(t.Unix()) }
func (s *State) LastRequest() time.Time {
	u := s.lastRequestUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
