package services

// TrianglePreset is a named, fixed input triple the UI can apply in one
// click. Applying a preset and analyzing is identical to analyzing the
// literal triple.
type TrianglePreset struct {
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Inputs      TriangleInputs `json:"inputs"`
}

// trianglePresets is the fixed preset lookup, in display order.
var trianglePresets = []TrianglePreset{
	{
		Key:         "balanced",
		Name:        "Balanced",
		Description: "Neutral starting point with equal weight on every axis.",
		Inputs:      TriangleInputs{Quality: 50, Time: 50, Cost: 50},
	},
	{
		Key:         "premium",
		Name:        "Premium",
		Description: "High quality backed by a generous timeline and budget.",
		Inputs:      TriangleInputs{Quality: 85, Time: 75, Cost: 80},
	},
	{
		Key:         "mvp",
		Name:        "MVP",
		Description: "Lean first version: modest quality, short runway.",
		Inputs:      TriangleInputs{Quality: 45, Time: 35, Cost: 40},
	},
	{
		Key:         "rush",
		Name:        "Rush Delivery",
		Description: "Tight deadline compensated with budget.",
		Inputs:      TriangleInputs{Quality: 70, Time: 25, Cost: 75},
	},
	{
		Key:         "budget",
		Name:        "Tight Budget",
		Description: "Cost squeezed, schedule and quality kept moderate.",
		Inputs:      TriangleInputs{Quality: 55, Time: 60, Cost: 25},
	},
	{
		Key:         "enterprise",
		Name:        "Enterprise",
		Description: "Maximum investment across the board.",
		Inputs:      TriangleInputs{Quality: 90, Time: 80, Cost: 85},
	},
}

// TrianglePresets returns the preset list in display order.
func TrianglePresets() []TrianglePreset {
	out := make([]TrianglePreset, len(trianglePresets))
	copy(out, trianglePresets)
	return out
}

// TrianglePresetByKey looks up a preset by its key.
func TrianglePresetByKey(key string) (TrianglePreset, bool) {
	for _, p := range trianglePresets {
		if p.Key == key {
			return p, true
		}
	}
	return TrianglePreset{}, false
}
