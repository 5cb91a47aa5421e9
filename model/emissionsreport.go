package model

// EmissionsReport maps each travel mode to its simulated emission value
// in grams of CO2e per km. A report lives for a single request only.
type EmissionsReport map[Mode]float64

type EmissionEntry struct {
	Mode     Mode
	Emission float64
}

// Entries returns the report content in Modes() order, for rendering.
func (report EmissionsReport) Entries() []EmissionEntry {
	entries := make([]EmissionEntry, 0, len(report))
	for _, mode := range Modes() {
		emission, ok := report[mode]
		if !ok {
			continue
		}
		entries = append(entries, EmissionEntry{Mode: mode, Emission: emission})
	}
	return entries
}
