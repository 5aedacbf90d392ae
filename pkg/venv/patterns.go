package venv

import "github.com/arthur-debert/uvw/pkg/errors"

// Patterns builds the ordered pattern set: explicit patterns first, then
// DefaultPatterns when useDefaults is set. Empty names and repeats are
// dropped, and an empty result is an error.
func Patterns(explicit []string, useDefaults bool) ([]string, error) {
	candidates := append([]string{}, explicit...)
	if useDefaults {
		candidates = append(candidates, DefaultPatterns...)
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}

	if len(out) == 0 {
		return nil, errors.New(errors.ErrNoPatterns, "no virtual environment patterns given; pass --venv or allow the defaults")
	}
	return out, nil
}
