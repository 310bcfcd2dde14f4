package location

import "strings"

// RegionIndex is the canonical list of states and their cities for the
// supported country scope. Lookups are case-insensitive; the canonical
// (correctly cased) names are returned.
type RegionIndex struct {
	states []string
	// lowercased state name -> canonical state name
	stateByLower map[string]string
	// canonical state name -> lowercased city name -> canonical city name
	citiesByState map[string]map[string]string
}

// NewRegionIndex builds a RegionIndex from the embedded region data for India.
func NewRegionIndex() *RegionIndex {
	idx := &RegionIndex{
		stateByLower:  make(map[string]string, len(indiaRegions)),
		citiesByState: make(map[string]map[string]string, len(indiaRegions)),
	}
	for _, r := range indiaRegions {
		idx.states = append(idx.states, r.State)
		idx.stateByLower[strings.ToLower(r.State)] = r.State
		cities := make(map[string]string, len(r.Cities))
		for _, c := range r.Cities {
			cities[strings.ToLower(c)] = c
		}
		idx.citiesByState[r.State] = cities
	}
	return idx
}

// States returns the canonical state names in data order.
func (x *RegionIndex) States() []string {
	out := make([]string, len(x.states))
	copy(out, x.states)
	return out
}

// StateByName resolves a state name case-insensitively to its canonical form.
func (x *RegionIndex) StateByName(name string) (string, bool) {
	s, ok := x.stateByLower[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// CitiesOf returns the canonical city names of the given canonical state.
func (x *RegionIndex) CitiesOf(state string) []string {
	cities, ok := x.citiesByState[state]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		out = append(out, c)
	}
	return out
}

// CityInState resolves a city name case-insensitively within a state resolved
// via StateByName. Returns the canonical city name.
func (x *RegionIndex) CityInState(state, city string) (string, bool) {
	canonical, ok := x.StateByName(state)
	if !ok {
		return "", false
	}
	c, ok := x.citiesByState[canonical][strings.ToLower(strings.TrimSpace(city))]
	return c, ok
}
