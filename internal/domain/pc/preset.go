package pc

import (
	"fmt"
	"strings"

	"pcshop/internal/domain"
)

// PresetModel is a fixed, manufacturer-defined configuration. Name,
// manufacturer, and parts are frozen at construction. Equality covers all
// three, so two presets sharing a name but differing in parts are distinct
// catalog entries.
type PresetModel struct {
	name         string
	manufacturer string
	parts        []string
}

func NewPresetModel(name, manufacturer string, parts []string) (*PresetModel, error) {
	n, err := normalizeModelName(name)
	if err != nil {
		return nil, err
	}
	m, err := normalizeManufacturer(manufacturer)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("preset model: %w: parts list cannot be empty", domain.ErrValidation)
	}
	return &PresetModel{
		name:         n,
		manufacturer: m,
		parts:        append([]string(nil), parts...),
	}, nil
}

func (m *PresetModel) ModelName() string { return m.name }

func (m *PresetModel) Manufacturer() string { return m.manufacturer }

func (m *PresetModel) Parts() []string { return append([]string(nil), m.parts...) }

func (m *PresetModel) String() string {
	return "preset model: " + m.manufacturer + " " + m.name
}

// Equal requires an exact match of name, manufacturer, and parts.
func (m *PresetModel) Equal(other *PresetModel) bool {
	if other == nil || m.name != other.name || m.manufacturer != other.manufacturer {
		return false
	}
	if len(m.parts) != len(other.parts) {
		return false
	}
	for i := range m.parts {
		if m.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// Key returns a comparable identity over (manufacturer, name, parts),
// suitable as a map key when grouping presets in aggregation.
func (m *PresetModel) Key() string {
	return m.manufacturer + "\x00" + m.name + "\x00" + strings.Join(m.parts, "\x00")
}
