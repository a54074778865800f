package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteScenario writes a scenario to a YAML file
func WriteScenario(s *Scenario, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// ReadScenario reads a scenario from a YAML file. A file without a version
// is taken as the current version; any other version is rejected.
func ReadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Version == "" {
		s.Version = Version
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%s: unsupported scenario version %q", path, s.Version)
	}

	for i, c := range s.Cinemas {
		if c == nil {
			return nil, fmt.Errorf("%s: cinema %d is empty", path, i)
		}
	}
	return &s, nil
}
