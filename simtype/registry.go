package simtype

import "sort"

// registry holds the finite set of simulation-type tags this build
// supports, mirroring the C++ original's compile-time
// available_simulations vector (src/available_simulations.hpp) but
// populated at init time since Go has no template instantiation list.
var registry = map[string]bool{}

// MustRegister declares tag as compiled into this build. It panics on a
// malformed tag, since registration happens at init time from literal
// strings, not from user input.
func MustRegister(tag string) {
	if _, err := Parse(tag); err != nil {
		panic(err)
	}
	registry[tag] = true
}

// Lookup validates that tag both parses and was registered via
// MustRegister, returning *SimulationTypeUnknownError otherwise.
func Lookup(tag string) (Tag, error) {
	t, err := Parse(tag)
	if err != nil {
		return Tag{}, err
	}
	if !registry[tag] {
		return Tag{}, &SimulationTypeUnknownError{Tag: tag}
	}
	return t, nil
}

// Registered returns the sorted list of currently registered tags.
func Registered() []string {
	tags := make([]string, 0, len(registry))
	for t := range registry {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func init() {
	// The combinations the original C++ build compiled in
	// (available_simulations.hpp), translated to this build's tags.
	MustRegister("O2QOPC21")
	MustRegister("O3MOPC21")
	MustRegister("O3DOPC21")
	MustRegister("O3QOPC21")
}
