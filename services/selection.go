package services

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownItem is returned when an item key is not in the catalog.
var ErrUnknownItem = errors.New("unknown work item")

// MinCustomHours is the floor for hour overrides; lower values are clamped.
const MinCustomHours = 1.0

// SelectedItem is a catalog item plus its per-session state. A CustomHours
// of zero means no override is set.
type SelectedItem struct {
	WorkItem
	Selected    bool    `json:"selected"`
	CustomHours float64 `json:"customHours"`
}

// EffectiveHours is the override when present, otherwise the base estimate.
func (s SelectedItem) EffectiveHours() float64 {
	if s.CustomHours >= MinCustomHours {
		return s.CustomHours
	}
	return s.BaseHours
}

// Selection is one visitor's in-progress quotation: which catalog items are
// picked and any hour overrides. Safe for concurrent use.
type Selection struct {
	mu    sync.Mutex
	items []SelectedItem
	index map[string]int
}

// NewSelection wraps a catalog with everything deselected.
func NewSelection(catalog *Catalog) *Selection {
	items := catalog.Items()
	s := &Selection{
		items: make([]SelectedItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		s.items[i] = SelectedItem{WorkItem: item}
		s.index[item.Key] = i
	}
	return s
}

// Items returns a snapshot of every item's state in catalog order.
func (s *Selection) Items() []SelectedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SelectedItem, len(s.items))
	copy(out, s.items)
	return out
}

// SelectedItems returns a snapshot of only the picked items, in catalog order.
func (s *Selection) SelectedItems() []SelectedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []SelectedItem
	for _, item := range s.items {
		if item.Selected {
			out = append(out, item)
		}
	}
	return out
}

// Toggle flips one item in or out of the quotation and returns its new state.
func (s *Selection) Toggle(key string) (SelectedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return SelectedItem{}, fmt.Errorf("toggle %q: %w", key, ErrUnknownItem)
	}
	s.items[i].Selected = !s.items[i].Selected
	return s.items[i], nil
}

// SetCustomHours stores an hour override, clamping values below the minimum.
// The returned state carries the clamped value.
func (s *Selection) SetCustomHours(key string, hours float64) (SelectedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return SelectedItem{}, fmt.Errorf("set hours for %q: %w", key, ErrUnknownItem)
	}
	if hours < MinCustomHours {
		hours = MinCustomHours
	}
	s.items[i].CustomHours = hours
	return s.items[i], nil
}

// ClearCustomHours drops an override so the base estimate applies again.
func (s *Selection) ClearCustomHours(key string) (SelectedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[key]
	if !ok {
		return SelectedItem{}, fmt.Errorf("clear hours for %q: %w", key, ErrUnknownItem)
	}
	s.items[i].CustomHours = 0
	return s.items[i], nil
}

// Reset deselects everything and drops all overrides.
func (s *Selection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Selected = false
		s.items[i].CustomHours = 0
	}
}
