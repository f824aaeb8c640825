package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	commandMetrics map[string]*CommandMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalUnknown    uint64
}

// CommandMetrics holds counters for a specific command word.
type CommandMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		commandMetrics: make(map[string]*CommandMetrics),
	}
}

// RecordDispatch records a successful dispatch.
func (m *Metrics) RecordDispatch(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	cm := m.command(name)
	cm.DispatchCount++
	cm.LastDispatch = time.Now()
}

// RecordError records a rejected or failed dispatch of a known command.
func (m *Metrics) RecordError(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalErrors++
	cm := m.command(name)
	cm.ErrorCount++
	cm.LastDispatch = time.Now()
}

// RecordUnknown records an unrecognized command word.
func (m *Metrics) RecordUnknown(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalUnknown++
}

// command returns the per-command record, creating it if needed.
// Caller must hold the lock.
func (m *Metrics) command(name string) *CommandMetrics {
	cm := m.commandMetrics[name]
	if cm == nil {
		cm = &CommandMetrics{Name: name}
		m.commandMetrics[name] = cm
	}
	return cm
}

// TotalDispatches returns the number of successful dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the number of rejected or failed dispatches.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalUnknown returns the number of unrecognized command words seen.
func (m *Metrics) TotalUnknown() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalUnknown
}

// Command returns a copy of the metrics for a command word.
func (m *Metrics) Command(name string) (CommandMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cm, ok := m.commandMetrics[name]
	if !ok {
		return CommandMetrics{}, false
	}
	return *cm, true
}

// Snapshot returns copies of all per-command metrics, sorted by name.
func (m *Metrics) Snapshot() []CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]CommandMetrics, 0, len(m.commandMetrics))
	for _, cm := range m.commandMetrics {
		result = append(result, *cm)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.commandMetrics = make(map[string]*CommandMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalUnknown = 0
}
