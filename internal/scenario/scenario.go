package scenario

import "github.com/ivlev/cinematool/internal/cinema"

// Version is written into every scenario file.
const Version = "1.0"

// Scenario is the YAML interchange form of one or more cinema records
type Scenario struct {
	Version string           `yaml:"version"`
	Cinemas []*cinema.Cinema `yaml:"cinemas"`
}

// New wraps records into a scenario of the current version.
func New(cs ...*cinema.Cinema) *Scenario {
	return &Scenario{Version: Version, Cinemas: cs}
}
