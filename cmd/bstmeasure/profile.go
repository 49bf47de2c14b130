package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Profile of a measurement run. Each step i in [1, Steps) inserts Adds random
// keys, removes Adds/Steps*i of them and probes as many keys again.
type Profile struct {
	Adds     uint32   `yaml:"adds"`
	Steps    uint32   `yaml:"steps"`
	Seed     int64    `yaml:"seed"`
	Subjects []string `yaml:"subjects"`
}

func DefaultProfile() Profile {
	return Profile{
		Adds:     100000,
		Steps:    10,
		Seed:     0,
		Subjects: slices.Sorted(subjectNames()),
	}
}

// LoadProfile reads a YAML profile from path. Fields missing from the file keep their default.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading profile: %w", err)
	}
	if err = yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, p.Validate()
}

func (p Profile) Validate() error {
	if p.Adds == 0 {
		return fmt.Errorf("adds must be positive")
	}
	if p.Steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", p.Steps)
	}
	if len(p.Subjects) == 0 {
		return fmt.Errorf("no subjects to measure")
	}
	for _, s := range p.Subjects {
		if _, ok := subjects[s]; !ok {
			return fmt.Errorf("unknown subject %q", s)
		}
	}
	return nil
}
