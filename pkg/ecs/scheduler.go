package ecs

import "go.uber.org/zap"

// Phase names a fixed ordinal grouping of systems within a tick.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePreUpdate
	PhaseUpdate
	PhasePostUpdate
	PhaseLateUpdate
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhasePreUpdate:
		return "PreUpdate"
	case PhaseUpdate:
		return "Update"
	case PhasePostUpdate:
		return "PostUpdate"
	case PhaseLateUpdate:
		return "LateUpdate"
	default:
		return "Unknown"
	}
}

// System is one unit of scheduled game logic.
type System struct {
	Name    string
	Phase   Phase
	Query   *Descriptor
	Before  []string
	After   []string
	Enabled bool
	Run     func(w *World, matched []Entity) error
}

// Scheduler topologically sorts systems within each phase by Kahn's
// algorithm and runs them in that order.
type Scheduler struct {
	logger  *zap.Logger
	systems map[string]System
	order   map[Phase][]string // compiled order, nil until (re)compiled
}

// NewScheduler returns an empty scheduler. logger may be nil.
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{logger: logger, systems: make(map[string]System), order: make(map[Phase][]string)}
}

// Register adds a system and forces recompilation of its phase's order.
// System replacement (re-registering an existing name) preserves ordinal
// position unless the phase changed, in which case both the old and new
// phase recompile.
func (s *Scheduler) Register(sys System) error {
	old, existed := s.systems[sys.Name]
	s.systems[sys.Name] = sys
	delete(s.order, sys.Phase)
	if existed && old.Phase != sys.Phase {
		delete(s.order, old.Phase)
	}
	return s.compile(sys.Phase)
}

// SetEnabled toggles a system's enabled flag in place without recompiling
// order.
func (s *Scheduler) SetEnabled(name string, enabled bool) {
	if sys, ok := s.systems[name]; ok {
		sys.Enabled = enabled
		s.systems[name] = sys
	}
}

// compile builds phase's topological order via Kahn's algorithm. Edge
// semantics: sys.Before[x] is an edge sys->x; sys.After[x] is an edge
// x->sys.
func (s *Scheduler) compile(phase Phase) error {
	var names []string
	for name, sys := range s.systems {
		if sys.Phase == phase {
			names = append(names, name)
		}
	}

	edges := make(map[string]map[string]bool) // a -> b means a must run before b
	indegree := make(map[string]int, len(names))
	for _, n := range names {
		edges[n] = make(map[string]bool)
		indegree[n] = 0
	}
	addEdge := func(a, b string) {
		if _, ok := edges[a]; !ok {
			return
		}
		if _, ok := edges[b]; !ok {
			return
		}
		if edges[a][b] {
			return
		}
		edges[a][b] = true
		indegree[b]++
	}
	for _, n := range names {
		sys := s.systems[n]
		for _, b := range sys.Before {
			addEdge(n, b)
		}
		for _, a := range sys.After {
			addEdge(a, n)
		}
	}

	// Deterministic tie-break: process the lowest-name ready node first so
	// order is stable across runs given the same registrations.
	var queue []string
	for _, n := range names {
		if indegree[n] == 0 {
			queue = insertSorted(queue, n)
		}
	}

	var sorted []string
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		sorted = append(sorted, n)
		for target := range edges[n] {
			indegree[target]--
			if indegree[target] == 0 {
				queue = insertSorted(queue, target)
			}
		}
	}

	if len(sorted) != len(names) {
		return &SchedulerCycleError{Phase: phase}
	}

	s.order[phase] = sorted
	return nil
}

func insertSorted(queue []string, n string) []string {
	i := 0
	for i < len(queue) && queue[i] < n {
		i++
	}
	queue = append(queue, "")
	copy(queue[i+1:], queue[i:])
	queue[i] = n
	return queue
}

// RunPhase executes every enabled system in phase in compiled order. A
// system's query, if set, is executed fresh immediately before the system
// runs. System errors are logged and re-raised, halting the tick.
func (s *Scheduler) RunPhase(w *World, phase Phase) error {
	order, ok := s.order[phase]
	if !ok {
		if err := s.compile(phase); err != nil {
			return err
		}
		order = s.order[phase]
	}
	for _, name := range order {
		sys := s.systems[name]
		if !sys.Enabled {
			continue
		}
		var matched []Entity
		if sys.Query != nil {
			matched = w.Query(*sys.Query).Execute()
		}
		if err := sys.Run(w, matched); err != nil {
			s.logger.Error("system failed", zap.String("system", sys.Name), zap.Error(err))
			return err
		}
	}
	return nil
}

// RunInit runs the Init phase once.
func (s *Scheduler) RunInit(w *World) error {
	return s.RunPhase(w, PhaseInit)
}

// RunAll runs PreUpdate, Update, PostUpdate, then LateUpdate in order.
func (s *Scheduler) RunAll(w *World) error {
	for _, phase := range []Phase{PhasePreUpdate, PhaseUpdate, PhasePostUpdate, PhaseLateUpdate} {
		if err := s.RunPhase(w, phase); err != nil {
			return err
		}
	}
	return nil
}
