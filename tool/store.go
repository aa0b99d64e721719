package tool

import (
	"fmt"
	"sort"

	draft "github.com/draftkit/draft2d"
)

// Store is the entity-store collaborator as seen by drafting tools. The
// real store lives in the host (with undo/redo, persistence and sync);
// tools receive a Store at activation instead of reaching into global
// state, so tests can inject a fake.
//
// Ids handed out by AddEntity may be invalidated at any time by external
// undo or deletion. Tools re-validate ids before using them.
type Store interface {
	// AddEntity commits a finished entity and returns its id.
	AddEntity(e draft.Entity) string

	// UpdateEntity replaces the entity stored under id.
	UpdateEntity(id string, e draft.Entity) error

	// DeleteEntity removes the entity stored under id.
	DeleteEntity(id string) error

	// Line returns the line stored under id, reporting false when the id
	// is unknown or names a non-line entity.
	Line(id string) (draft.Line, bool)

	// Lines returns the stored lines keyed by id. The map is a snapshot;
	// mutating it does not affect the store.
	Lines() map[string]draft.Line

	// ActiveLayer returns the layer new entities are committed to.
	ActiveLayer() string

	// SelectEntities replaces the host-side selection highlight.
	SelectEntities(ids ...string)

	// ClearSelection clears the host-side selection highlight.
	ClearSelection()

	// SetCommandPrompt updates the host's textual feedback channel.
	SetCommandPrompt(text string)
}

// MemStore is an in-memory Store for tests and the command-line driver.
type MemStore struct {
	entities map[string]draft.Entity
	layers   map[string]string // entity id -> layer
	order    []string
	next     int
	selected []string
	prompt   string
	layer    string
}

// NewMemStore creates an empty in-memory store with active layer "0".
func NewMemStore() *MemStore {
	return &MemStore{
		entities: make(map[string]draft.Entity),
		layers:   make(map[string]string),
		layer:    "0",
	}
}

// AddEntity implements Store.
func (m *MemStore) AddEntity(e draft.Entity) string {
	m.next++
	id := fmt.Sprintf("e%d", m.next)
	m.entities[id] = e
	m.layers[id] = m.layer
	m.order = append(m.order, id)
	return id
}

// UpdateEntity implements Store.
func (m *MemStore) UpdateEntity(id string, e draft.Entity) error {
	if _, ok := m.entities[id]; !ok {
		return fmt.Errorf("tool: no entity %q", id)
	}
	m.entities[id] = e
	return nil
}

// DeleteEntity implements Store.
func (m *MemStore) DeleteEntity(id string) error {
	if _, ok := m.entities[id]; !ok {
		return fmt.Errorf("tool: no entity %q", id)
	}
	delete(m.entities, id)
	delete(m.layers, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Entity returns the entity stored under id.
func (m *MemStore) Entity(id string) (draft.Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// Line implements Store.
func (m *MemStore) Line(id string) (draft.Line, bool) {
	l, ok := m.entities[id].(draft.Line)
	return l, ok
}

// Lines implements Store.
func (m *MemStore) Lines() map[string]draft.Line {
	out := make(map[string]draft.Line)
	for id, e := range m.entities {
		if l, ok := e.(draft.Line); ok {
			out[id] = l
		}
	}
	return out
}

// Entities returns all stored entities in commit order.
func (m *MemStore) Entities() []draft.Entity {
	out := make([]draft.Entity, 0, len(m.order))
	for _, id := range m.order {
		if e, ok := m.entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// IDs returns all stored ids in commit order.
func (m *MemStore) IDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// ActiveLayer implements Store.
func (m *MemStore) ActiveLayer() string { return m.layer }

// SetActiveLayer changes the layer new entities are committed to.
func (m *MemStore) SetActiveLayer(layer string) { m.layer = layer }

// SelectEntities implements Store.
func (m *MemStore) SelectEntities(ids ...string) {
	m.selected = append([]string(nil), ids...)
	sort.Strings(m.selected)
}

// ClearSelection implements Store.
func (m *MemStore) ClearSelection() { m.selected = nil }

// Selected returns the current selection, sorted by id.
func (m *MemStore) Selected() []string {
	return append([]string(nil), m.selected...)
}

// SetCommandPrompt implements Store.
func (m *MemStore) SetCommandPrompt(text string) { m.prompt = text }

// Prompt returns the last command prompt text.
func (m *MemStore) Prompt() string { return m.prompt }

// Verify MemStore implements Store.
var _ Store = (*MemStore)(nil)
