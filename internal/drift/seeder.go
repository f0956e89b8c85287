package drift

import "log"

// Seed fills a container with a random number of circles in [1, cap]. Each
// spawn re-checks the cap, so a partly populated container ends at the cap.
func (m *Manager) Seed(c Container) {
	if c == nil {
		log.Printf("[CircleManager] Error: seed requested for a missing container")
		return
	}
	if m.settings.MaxPerContainer < 1 {
		return
	}
	n := RandomInRange(m.rng, 1, m.settings.MaxPerContainer)
	for i := 0; i < n; i++ {
		m.SpawnCircle(c)
	}
}

// Reset drops every active circle of a container and seeds it again. It is
// used when the container's dimensions change, so no circle keeps drifting
// along a path computed for the old size.
func (m *Manager) Reset(c Container) {
	if c == nil {
		log.Printf("[CircleManager] Error: reset requested for a missing container")
		return
	}
	id := c.ID()
	if _, ok := m.byID[id]; !ok {
		log.Printf("[CircleManager] Warning: container %q is not registered, skipping reset", id)
		return
	}
	m.clear(id)
	m.Seed(c)
}

// ResetAll resets every registered container in registration order.
func (m *Manager) ResetAll() {
	for _, c := range m.containers {
		m.Reset(c)
	}
}
