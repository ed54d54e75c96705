package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmcardle/pickwheel/internal/engine"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string            `json:"description"`
	Seed        string            `json:"seed"`
	Steps       []FixtureStep     `json:"steps"`
	Expected    []FixtureExpected `json:"expected,omitempty"`
}

// FixtureStep mirrors replay.Step with JSON tags.
type FixtureStep struct {
	Total       int       `json:"total"`
	Weights     []float64 `json:"weights,omitempty"`
	Strategy    string    `json:"strategy"`
	AvoidRepeat bool      `json:"avoid_repeat"`
	Signature   string    `json:"signature,omitempty"`
}

// FixtureExpected captures the expected pick per step. Index -1 with
// picked=false is the "no selection" outcome.
type FixtureExpected struct {
	Step   int  `json:"step"`
	Index  int  `json:"index"`
	Picked bool `json:"picked"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToStep converts a FixtureStep to a domain Step.
func (fs *FixtureStep) ToStep() (Step, error) {
	strat, err := engine.ParseStrategy(fs.Strategy)
	if err != nil {
		return Step{}, err
	}
	return Step{
		Total:       fs.Total,
		Weights:     fs.Weights,
		Strategy:    strat,
		AvoidRepeat: fs.AvoidRepeat,
		Signature:   fs.Signature,
	}, nil
}

// ToSteps converts every fixture step, failing on the first bad strategy.
func (f *Fixture) ToSteps() ([]Step, error) {
	steps := make([]Step, len(f.Steps))
	for i := range f.Steps {
		s, err := f.Steps[i].ToStep()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps[i] = s
	}
	return steps, nil
}

// #endregion fixture-loader
