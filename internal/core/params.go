package core

import (
	"strconv"
)

// Parameter describes a single value a simulation reports to viewers.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that publish a HUD snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam formats an integer parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// FloatParam formats a floating point parameter with two decimals.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}

// MapInt reads key from cfg, keeping def when it is missing, malformed or
// below lo.
func MapInt(cfg map[string]string, key string, def, lo int) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < lo {
		return def
	}
	return parsed
}

// MapFloat reads a float in [lo, hi] from cfg, keeping def otherwise.
func MapFloat(cfg map[string]string, key string, def, lo, hi float64) float64 {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || parsed < lo || parsed > hi {
		return def
	}
	return parsed
}

// MapBool reads a strconv.ParseBool value from cfg.
func MapBool(cfg map[string]string, key string, def bool) bool {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}
