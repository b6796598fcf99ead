package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lanternkit/crossing/puzzle"
)

// Sentinel errors returned by Load and Validate.
var (
	// ErrBadVersion indicates an unsupported scenario file version.
	ErrBadVersion = errors.New("scenario: unsupported file version")

	// ErrBadCost indicates a non-positive crossing cost in the file.
	ErrBadCost = errors.New("scenario: crossing costs must be positive")

	// ErrBadBound indicates a non-positive cost bound in the file.
	ErrBadBound = errors.New("scenario: cost bound must be positive")
)

// Scenario describes one crossing problem: a named party given by its
// per-traveler crossing costs, and the accumulated-cost bound the plan
// must satisfy.
type Scenario struct {
	Name  string  `yaml:"name"`
	Costs []int64 `yaml:"costs"`
	Bound int64   `yaml:"bound"`
}

// file is the on-disk envelope around a Scenario.
type file struct {
	Version  int      `yaml:"version"`
	Scenario Scenario `yaml:"scenario"`
}

// Classic returns the reference scenario: four travelers with costs
// 1, 2, 5 and 10, and a bound of 17 — the classic riddle, whose optimal
// plan costs exactly 17 in five moves.
func Classic() *Scenario {
	return &Scenario{
		Name:  "classic",
		Costs: []int64{1, 2, 5, 10},
		Bound: 17,
	}
}

// Load reads and validates a scenario file at path.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("scenario: parsing %s: %w", path, err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, f.Version)
	}
	if err := f.Scenario.Validate(); err != nil {
		return nil, err
	}

	return &f.Scenario, nil
}

// Validate checks the scenario's fields: every cost strictly positive
// and a positive bound. An empty cost list is allowed — the engine treats
// an empty party as already at its goal.
func (s *Scenario) Validate() error {
	for i, c := range s.Costs {
		if c <= 0 {
			return fmt.Errorf("%w: traveler %d has cost %d", ErrBadCost, i+1, c)
		}
	}
	if s.Bound <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadBound, s.Bound)
	}

	return nil
}

// Party builds the puzzle.Party described by the scenario's costs.
func (s *Scenario) Party() (*puzzle.Party, error) {
	return puzzle.NewParty(s.Costs...)
}
