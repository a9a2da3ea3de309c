package mode

import "sync"

// Trigger is an input that may change the mode.
type Trigger uint8

const (
	// TriggerEscape returns to Normal.
	TriggerEscape Trigger = iota

	// TriggerInsert is 'i'.
	TriggerInsert

	// TriggerVisual is 'v'.
	TriggerVisual

	// TriggerCommand is ':'.
	TriggerCommand

	// TriggerExecute is Enter on the command line.
	TriggerExecute
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerEscape:
		return "escape"
	case TriggerInsert:
		return "insert"
	case TriggerVisual:
		return "visual"
	case TriggerCommand:
		return "command"
	case TriggerExecute:
		return "execute"
	default:
		return "unknown"
	}
}

type transition struct {
	from Mode
	on   Trigger
}

// transitions is the complete set of allowed mode changes.
var transitions = map[transition]Mode{
	{Normal, TriggerEscape}:  Normal,
	{Insert, TriggerEscape}:  Normal,
	{Visual, TriggerEscape}:  Normal,
	{Command, TriggerEscape}: Normal,

	{Normal, TriggerInsert}: Insert,
	{Visual, TriggerInsert}: Insert,

	{Normal, TriggerCommand}: Command,
	{Visual, TriggerCommand}: Command,

	{Normal, TriggerVisual}: Visual,
	{Visual, TriggerVisual}: Normal,

	{Command, TriggerExecute}: Normal,
}

// Next returns the mode reached from m on t, and false when t does not
// apply in m.
func Next(m Mode, t Trigger) (Mode, bool) {
	to, ok := transitions[transition{m, t}]
	return to, ok
}

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to Mode)

// Machine tracks the current mode.
type Machine struct {
	mu sync.RWMutex

	current  Mode
	previous Mode

	callbacks map[int]ChangeCallback
	nextID    int
}

// NewMachine creates a machine in Normal mode.
func NewMachine() *Machine {
	return &Machine{callbacks: make(map[int]ChangeCallback)}
}

// Current returns the current mode.
func (m *Machine) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Previous returns the mode before the last transition.
func (m *Machine) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Is reports whether the current mode is mode.
func (m *Machine) Is(mode Mode) bool {
	return m.Current() == mode
}

// IsAny reports whether the current mode is one of modes.
func (m *Machine) IsAny(modes ...Mode) bool {
	cur := m.Current()
	for _, mode := range modes {
		if cur == mode {
			return true
		}
	}
	return false
}

// Fire applies t. It returns the resulting mode and whether t applied
// in the current mode. Callbacks run only when the mode changes.
func (m *Machine) Fire(t Trigger) (Mode, bool) {
	m.mu.Lock()

	from := m.current
	to, ok := Next(from, t)
	if !ok {
		m.mu.Unlock()
		return from, false
	}
	if to == from {
		m.mu.Unlock()
		return to, true
	}

	m.previous, m.current = from, to
	callbacks := make([]ChangeCallback, 0, len(m.callbacks))
	for _, cb := range m.callbacks {
		callbacks = append(callbacks, cb)
	}
	m.mu.Unlock()

	// Notify callbacks outside of lock
	for _, cb := range callbacks {
		cb(from, to)
	}
	return to, true
}

// OnChange registers a callback for mode changes and returns a function
// that removes it.
func (m *Machine) OnChange(cb ChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.callbacks[id] = cb
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.callbacks, id)
	}
}
