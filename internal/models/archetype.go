package models

import "strings"

// Preset archetype identifiers built into the application. Presets are never
// persisted as custom entries and cannot be removed.
const (
	PresetFitness = "fitness"
	PresetDietary = "dietary"
)

// PresetArchetypes lists the built-in archetype identifiers in display order.
func PresetArchetypes() []string {
	return []string{PresetFitness, PresetDietary}
}

// IsPresetArchetype reports whether id names a built-in archetype,
// independent of any persisted custom entries.
func IsPresetArchetype(id string) bool {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case PresetFitness, PresetDietary:
		return true
	}
	return false
}
