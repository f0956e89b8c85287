package drift

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sort"
	"time"
)

// Settings are the circle tunables. They are read-only for the lifetime of
// a Manager.
type Settings struct {
	MaxPerContainer      int
	SizeMin, SizeMax     int // pixels
	DurationMin          int // whole seconds
	DurationMax          int // whole seconds
	EdgeOffsetMultiplier float64
	Fill                 color.NRGBA
	BlurRadius           float64
}

// Circle is one drifting element. It is never mutated after it is spawned.
type Circle struct {
	ID        CircleID
	Container ContainerID
	Size      float64
	Start     Point
	End       Point
	Duration  time.Duration
	Fill      color.NRGBA
	Blur      float64
}

// CircleState is a Circle together with its current position, for drawing.
type CircleState struct {
	Circle
	Position Point
}

// Stats counts lifecycle events since the Manager was created.
type Stats struct {
	Spawned   int
	Completed int
	Declined  int // spawn attempts refused by the population cap
	Discarded int // completions of circles that were already cleared
}

// Manager owns the active circle set of every registered container and keeps
// each population alive: when a circle finishes drifting it is removed and a
// replacement is spawned into the same container.
//
// Manager is not safe for concurrent use; all calls are expected from the
// game loop.
type Manager struct {
	settings Settings
	rng      *rand.Rand
	animator *Animator

	containers []Container
	byID       map[ContainerID]Container

	active map[ContainerID]map[CircleID]*Circle
	live   map[CircleID]*Circle

	nextID CircleID
	stats  Stats
}

// NewManager creates a Manager with no containers. A nil rng uses the global
// random source.
func NewManager(settings Settings, rng *rand.Rand) *Manager {
	return &Manager{
		settings: settings,
		rng:      rng,
		animator: NewAnimator(),
		byID:     make(map[ContainerID]Container),
		active:   make(map[ContainerID]map[CircleID]*Circle),
		live:     make(map[CircleID]*Circle),
		nextID:   1,
	}
}

// Settings returns the tunables the manager was built with.
func (m *Manager) Settings() Settings { return m.settings }

// AddContainer registers a container. Adding the same id twice is a no-op.
func (m *Manager) AddContainer(c Container) {
	if c == nil {
		log.Printf("[CircleManager] Error: cannot register a nil container")
		return
	}
	id := c.ID()
	if _, exists := m.byID[id]; exists {
		return
	}
	m.containers = append(m.containers, c)
	m.byID[id] = c
	m.active[id] = make(map[CircleID]*Circle)
}

// RemoveContainer unregisters a container and drops its circles. Animations
// still in flight for it complete without respawning.
func (m *Manager) RemoveContainer(id ContainerID) {
	if _, exists := m.byID[id]; !exists {
		return
	}
	m.clear(id)
	delete(m.active, id)
	delete(m.byID, id)
	for i, c := range m.containers {
		if c.ID() == id {
			m.containers = append(m.containers[:i], m.containers[i+1:]...)
			break
		}
	}
}

// Containers returns the registered containers in registration order.
func (m *Manager) Containers() []Container {
	out := make([]Container, len(m.containers))
	copy(out, m.containers)
	return out
}

// SpawnCircle adds one circle to c unless its population is already at the
// cap. A nil or unregistered container is logged and ignored.
func (m *Manager) SpawnCircle(c Container) {
	if c == nil {
		log.Printf("[CircleManager] Error: spawn requested for a missing container")
		return
	}
	id := c.ID()
	set, ok := m.active[id]
	if !ok {
		log.Printf("[CircleManager] Warning: container %q is not registered, skipping spawn", id)
		return
	}
	if len(set) >= m.settings.MaxPerContainer {
		m.stats.Declined++
		return
	}

	s := m.settings
	size := float64(RandomInRange(m.rng, s.SizeMin, s.SizeMax))
	w, h := c.Size()
	start := RandomEdgePosition(m.rng, w, h, size, s.EdgeOffsetMultiplier)
	end := RandomEdgePosition(m.rng, w, h, size, s.EdgeOffsetMultiplier)
	seconds := RandomInRange(m.rng, s.DurationMin, s.DurationMax)

	circle := &Circle{
		ID:        m.nextID,
		Container: id,
		Size:      size,
		Start:     start,
		End:       end,
		Duration:  time.Duration(seconds) * time.Second,
		Fill:      s.Fill,
		Blur:      s.BlurRadius,
	}
	m.nextID++

	// Register before animating so the cap holds while the tween is pending.
	set[circle.ID] = circle
	m.live[circle.ID] = circle
	m.animator.Start(circle.ID, circle.Start, circle.End, circle.Duration)
	m.stats.Spawned++
}

// Update advances every animation by dt and handles the ones that finished.
// Completions are drained from a queue so respawning never recurses.
func (m *Manager) Update(dt time.Duration) {
	queue := m.animator.Advance(dt)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		m.complete(id)
	}
}

func (m *Manager) complete(id CircleID) {
	circle, ok := m.live[id]
	if !ok {
		// Cleared by a reset or container removal while in flight.
		m.stats.Discarded++
		return
	}
	delete(m.live, id)
	delete(m.active[circle.Container], id)
	m.stats.Completed++

	c, ok := m.byID[circle.Container]
	if !ok {
		return
	}
	m.SpawnCircle(c)
}

// clear detaches every circle of a container. Their tweens keep running in
// the animator but their completions are discarded.
func (m *Manager) clear(id ContainerID) {
	for cid := range m.active[id] {
		delete(m.live, cid)
	}
	m.active[id] = make(map[CircleID]*Circle)
}

// Count returns the number of active circles in a container.
func (m *Manager) Count(id ContainerID) int {
	return len(m.active[id])
}

// Total returns the number of active circles across all containers.
func (m *Manager) Total() int {
	return len(m.live)
}

// Circles returns the active circles of a container with their current
// positions, oldest first.
func (m *Manager) Circles(id ContainerID) []CircleState {
	set := m.active[id]
	out := make([]CircleState, 0, len(set))
	for _, c := range set {
		pos, ok := m.animator.Position(c.ID)
		if !ok {
			pos = c.End
		}
		out = append(out, CircleState{Circle: *c, Position: pos})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Stats returns lifecycle counters.
func (m *Manager) Stats() Stats { return m.stats }
