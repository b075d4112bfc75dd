package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/Nia806/Epoch/internal/keyvalue"
	"github.com/Nia806/Epoch/internal/models"
)

// ArchetypeSlot is the medium key holding the custom archetype names.
const ArchetypeSlot = "custom_archetypes"

// ArchetypeStore owns the custom dietary-archetype slot: an append-ordered
// list of unique names. Uniqueness is case-insensitive; the built-in presets
// live outside the slot entirely.
type ArchetypeStore struct {
	medium   keyvalue.Store
	notifier *Notifier
}

// NewArchetypeStore creates a store over the given persistence medium.
func NewArchetypeStore(medium keyvalue.Store) *ArchetypeStore {
	return &ArchetypeStore{
		medium:   medium,
		notifier: NewNotifier(),
	}
}

// GetAll returns the custom archetype names in the order they were saved.
// An absent slot, invalid JSON, or a non-array payload all yield an empty
// slice.
func (s *ArchetypeStore) GetAll(ctx context.Context) []string {
	raw, err := s.medium.Get(ctx, ArchetypeSlot)
	if err != nil {
		if !errors.Is(err, keyvalue.ErrNotFound) {
			log.Printf("[ArchetypeStore] read failed, treating as empty: %v", err)
		}
		return []string{}
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		log.Printf("[ArchetypeStore] corrupt slot, treating as empty: %v", err)
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

// Add appends a custom archetype name. Blank input and case-insensitive
// duplicates are silently ignored; neither persists nor notifies.
func (s *ArchetypeStore) Add(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	names := s.GetAll(ctx)
	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return
		}
	}

	s.save(ctx, append(names, name))
	s.notifier.Publish()
}

// Remove deletes a custom archetype by name, matching case-insensitively.
// A miss is a no-op; the collection is re-persisted and subscribers
// notified either way.
func (s *ArchetypeStore) Remove(ctx context.Context, name string) {
	names := s.GetAll(ctx)
	kept := names[:0]
	for _, existing := range names {
		if !strings.EqualFold(existing, name) {
			kept = append(kept, existing)
		}
	}

	s.save(ctx, kept)
	s.notifier.Publish()
}

// IsPreset reports whether id names one of the built-in archetypes,
// independent of the persisted custom entries.
func (s *ArchetypeStore) IsPreset(id string) bool {
	return models.IsPresetArchetype(id)
}

// Subscribe registers an observer for changes to this store and returns its
// deregistration func.
func (s *ArchetypeStore) Subscribe(fn func()) func() {
	return s.notifier.Subscribe(fn)
}

func (s *ArchetypeStore) save(ctx context.Context, names []string) {
	data, err := json.Marshal(names)
	if err != nil {
		log.Printf("[ArchetypeStore] failed to encode archetypes: %v", err)
		return
	}
	if err := s.medium.Set(ctx, ArchetypeSlot, string(data)); err != nil {
		log.Printf("[ArchetypeStore] failed to persist archetypes: %v", err)
	}
}
