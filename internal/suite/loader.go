package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = struct{}{}

		if (c.Want == nil) == (c.Error == "") {
			return nil, fmt.Errorf("case %q must set exactly one of want or error", c.Name)
		}
		if c.Error != "" && !knownError(c.Error) {
			return nil, fmt.Errorf("case %q expects unknown error %q", c.Name, c.Error)
		}
		if c.Tolerance < 0 {
			return nil, fmt.Errorf("case %q has negative tolerance", c.Name)
		}
		if c.Tolerance == 0 {
			c.Tolerance = DefaultTolerance
		}
	}

	return &s, nil
}

func knownError(s string) bool {
	if _, ok := calc.ParseKind(s); ok {
		return true
	}
	for _, k := range calc.Kinds() {
		if k.Code() == s {
			return true
		}
	}
	return false
}
