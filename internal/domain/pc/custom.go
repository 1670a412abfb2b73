package pc

import "strings"

// CustomModel is a user-assembled configuration. The generated name is its
// whole identity; the parts list stays mutable even after the model has been
// placed into an order, so later additions remain visible through the order.
type CustomModel struct {
	name  string
	parts []string
}

func newCustomModel(name string) *CustomModel {
	return &CustomModel{name: name}
}

func (m *CustomModel) ModelName() string { return m.name }

func (m *CustomModel) Parts() []string { return append([]string(nil), m.parts...) }

// AddPart appends the part verbatim. Blank input is ignored without error.
// Duplicates are allowed; each occurrence counts separately in aggregation.
func (m *CustomModel) AddPart(part string) {
	if strings.TrimSpace(part) == "" {
		return
	}
	m.parts = append(m.parts, part)
}

// RemovePart removes the first exact occurrence of part and reports whether
// anything was removed.
func (m *CustomModel) RemovePart(part string) bool {
	for i, p := range m.parts {
		if p == part {
			m.parts = append(m.parts[:i], m.parts[i+1:]...)
			return true
		}
	}
	return false
}

// Equal compares by generated name only; parts are not part of identity.
func (m *CustomModel) Equal(other *CustomModel) bool {
	return other != nil && m.name == other.name
}

func (m *CustomModel) String() string {
	return "custom model: " + m.name
}
