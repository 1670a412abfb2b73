package fulfillment

// Details is an immutable snapshot of everything needed to source one
// fulfilled order: preset counts grouped by manufacturer and model name,
// and warehouse part counts flattened from the order's custom models.
type Details struct {
	presetOrders   map[string]map[string]int
	warehouseParts map[string]int
}

// NewDetails deep-copies both maps so later mutation of the caller's maps
// cannot leak into the snapshot.
func NewDetails(presetOrders map[string]map[string]int, warehouseParts map[string]int) *Details {
	return &Details{
		presetOrders:   copyPresetOrders(presetOrders),
		warehouseParts: copyCounts(warehouseParts),
	}
}

// PresetOrders maps manufacturer -> model name -> ordered count.
func (d *Details) PresetOrders() map[string]map[string]int {
	return copyPresetOrders(d.presetOrders)
}

// WarehouseParts maps part name -> required count, one per occurrence.
func (d *Details) WarehouseParts() map[string]int {
	return copyCounts(d.warehouseParts)
}

func copyPresetOrders(src map[string]map[string]int) map[string]map[string]int {
	out := make(map[string]map[string]int, len(src))
	for manufacturer, models := range src {
		out[manufacturer] = copyCounts(models)
	}
	return out
}

func copyCounts(src map[string]int) map[string]int {
	out := make(map[string]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
