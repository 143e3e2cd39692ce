// Package suite runs YAML-described expression check suites against the engine.
package suite

import (
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
)

const DefaultTolerance = 1e-9

type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`
}

// Case expects either a value (Want) or a failure (Error). Error accepts a
// kind name such as DivisionByZero or an API code such as EVALUATION_ERROR.
type Case struct {
	Name       string   `yaml:"name"`
	Expression string   `yaml:"expression"`
	Want       *float64 `yaml:"want,omitempty"`
	Error      string   `yaml:"error,omitempty"`
	Tolerance  float64  `yaml:"tolerance,omitempty"`
}

type Result struct {
	Case     Case          `json:"case"`
	Got      float64       `json:"got,omitempty"`
	GotKind  calc.Kind     `json:"-"`
	Kind     string        `json:"kind,omitempty"`
	Err      string        `json:"error,omitempty"`
	Passed   bool          `json:"passed"`
	Reason   string        `json:"reason,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}
