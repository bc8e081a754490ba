// internal/rules/version.go
package rules

import (
	"fmt"
	"strings"

	"github.com/solatis/noticegate/internal/types"
	"golang.org/x/mod/semver"
)

/*
 * Version clause matching.
 *
 * Recursive matcher over the ConditionalClause tagged union:
 *   - range: lowerInclusive <= v < upperExclusive, absent bound unconstrained
 *   - exactMatch: semantic equality against any listed version
 *   - or: any sub-clause matches (short-circuit); empty list never matches
 *
 * Comparison is semantic, not lexical: "1.2.0" equals "1.2.0" regardless of
 * formatting quirks semver canonicalization absorbs, and "1.10.0" orders
 * after "1.9.0". golang.org/x/mod/semver does the ordering; canonVersion
 * bridges the bare "1.2.3" form catalogs use to the "v"-prefixed form the
 * package requires.
 *
 * Unknown clause tags are fatal. A newer catalog schema evaluated by older
 * engine code must surface as an error, never as a silent non-match.
 */

// canonVersion converts a bare version string to canonical "v"-prefixed form.
// Partial versions complete to zero ("1.2" -> "v1.2.0").
// Returns ErrInvalidVersion for strings semver cannot parse.
func canonVersion(s string) (string, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	c := semver.Canonical(v)
	if c == "" {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidVersion, s)
	}
	return c, nil
}

// matchClause reports whether version (canonical form) satisfies the clause.
// Recursive over or-clauses; short-circuits on the first matching sub-clause.
func matchClause(c *types.ConditionalClause, version string) (bool, error) {
	switch c.Type {
	case types.ClauseRange:
		if c.LowerInclusive != "" {
			lower, err := canonVersion(c.LowerInclusive)
			if err != nil {
				return false, err
			}
			if semver.Compare(version, lower) < 0 {
				return false, nil
			}
		}
		if c.UpperExclusive != "" {
			upper, err := canonVersion(c.UpperExclusive)
			if err != nil {
				return false, err
			}
			if semver.Compare(version, upper) >= 0 {
				return false, nil
			}
		}
		return true, nil

	case types.ClauseExactMatch:
		for _, raw := range c.Values {
			candidate, err := canonVersion(raw)
			if err != nil {
				return false, err
			}
			if semver.Compare(version, candidate) == 0 {
				return true, nil
			}
		}
		return false, nil

	case types.ClauseOr:
		for i := range c.Clauses {
			matched, err := matchClause(&c.Clauses[i], version)
			if err != nil {
				return false, err
			}
			if matched {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, fmt.Errorf("%w: %q", types.ErrUnknownClauseType, c.Type)
	}
}
