package rope

import (
	"log/slog"

	"ropesim/internal/geom"
	"ropesim/internal/logging"
)

// Observer is notified as a simulation advances.
type Observer interface {
	OnStart(r Rope, visited int)
	OnMove(m geom.Move)
	OnStep(r Rope, visited int)
}

// Option configures a Simulator.
type Option func(*Simulator)

func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

func WithObserver(o Observer) Option {
	return func(s *Simulator) { s.obs = append(s.obs, o) }
}

// Simulator drives a rope through a sequence of moves and tracks where its tail has been.
type Simulator struct {
	origin  geom.Point
	rope    Rope
	visited *VisitedSet
	steps   int
	obs     []Observer
	log     *slog.Logger
}

// NewSimulator places a rope of the given length on origin.
func NewSimulator(length int, origin geom.Point, opts ...Option) (*Simulator, error) {
	r, err := New(length, origin)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		origin:  origin,
		rope:    r,
		visited: NewVisitedSet(r.Tail()),
		log:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, o := range s.obs {
		o.OnStart(s.rope, s.visited.Len())
	}
	return s, nil
}

// Apply decomposes m into unit steps and records the tail after each of them.
func (s *Simulator) Apply(m geom.Move) {
	s.log.Debug("apply move", "move", m, "head", s.rope.Head())
	for _, o := range s.obs {
		o.OnMove(m)
	}
	for unit := range m.Steps() {
		s.rope.Step(unit)
		s.visited.Add(s.rope.Tail())
		s.steps++
		for _, o := range s.obs {
			o.OnStep(s.rope, s.visited.Len())
		}
	}
}

// Run applies every move in order and returns the number of distinct tail positions.
func (s *Simulator) Run(moves []geom.Move) int {
	for _, m := range moves {
		s.Apply(m)
	}
	s.log.Info("simulation finished",
		"segments", len(s.rope),
		"moves", len(moves),
		"steps", s.steps,
		"visited", s.visited.Len(),
	)
	return s.visited.Len()
}

func (s *Simulator) Visited() int { return s.visited.Len() }

// VisitedSet exposes the tail positions recorded so far. Callers must not modify it.
func (s *Simulator) VisitedSet() *VisitedSet { return s.visited }

// Rope returns a copy of the current rope.
func (s *Simulator) Rope() Rope { return s.rope.Clone() }

func (s *Simulator) Origin() geom.Point { return s.origin }

// Steps is the number of unit steps taken so far.
func (s *Simulator) Steps() int { return s.steps }

// CountTailPositions runs moves on a rope of length segments starting at the
// origin and returns how many distinct cells the tail visited.
func CountTailPositions(moves []geom.Move, length int) (int, error) {
	origin := geom.Pt(0, 0)
	sim, err := NewSimulator(length, origin)
	if err != nil {
		return 0, err
	}
	return sim.Run(moves), nil
}
