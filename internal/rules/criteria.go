// internal/rules/criteria.go
package rules

import (
	"fmt"

	"github.com/solatis/noticegate/internal/types"
)

/*
 * Criteria comparison logic.
 *
 * Implements the four set comparisons behind the eight criteria types:
 *   - membership (OS, ComputeEnv): expected set contains the single context value
 *   - intersection (AuthType, AuthRegion, AuthState): any context value in expected set
 *   - set equality (AuthScopes): expected and context are set-equal, order-free
 *   - superset (InstalledExtensions, ActiveExtensions): expected subset of context
 *
 * Degenerate inputs resolve to booleans, never errors: an empty expected set
 * for an intersection criterion matches nothing, an empty expected set for a
 * superset criterion matches everything. Only an unknown criteria type errors.
 *
 * Why function-based: dispatch over a closed string discriminant via switch
 * keeps the eight variants in one screen; eight interface implementations
 * would scatter near-identical set logic.
 */

// matchCriterion reports whether the context satisfies one criteria condition.
func matchCriterion(c *types.CriteriaCondition, rc *types.RuleContext) (bool, error) {
	switch c.Type {
	case types.CriteriaOS:
		return containsValue(c.Values, rc.OS), nil
	case types.CriteriaComputeEnv:
		return containsValue(c.Values, rc.ComputeEnv), nil
	case types.CriteriaAuthType:
		return intersects(rc.AuthTypes, c.Values), nil
	case types.CriteriaAuthRegion:
		return intersects(rc.AuthRegions, c.Values), nil
	case types.CriteriaAuthState:
		return intersects(rc.AuthStates, c.Values), nil
	case types.CriteriaAuthScopes:
		return setEqual(rc.AuthScopes, c.Values), nil
	case types.CriteriaInstalledExtensions:
		return containsAll(rc.InstalledExtensions, c.Values), nil
	case types.CriteriaActiveExtensions:
		return containsAll(rc.ActiveExtensions, c.Values), nil
	default:
		return false, fmt.Errorf("%w: %q", types.ErrUnknownCriteriaType, c.Type)
	}
}

// toSet converts a value list to a set, collapsing duplicates.
func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// containsValue reports whether value appears in the expected list.
func containsValue(expected []string, value string) bool {
	for _, e := range expected {
		if e == value {
			return true
		}
	}
	return false
}

// intersects reports whether any context value appears in the expected list.
// Empty context or empty expected list never intersects.
func intersects(contextValues, expected []string) bool {
	set := toSet(expected)
	for _, v := range contextValues {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// setEqual reports whether context and expected hold the same values,
// order-independent, duplicates collapsed.
func setEqual(contextValues, expected []string) bool {
	cs := toSet(contextValues)
	es := toSet(expected)
	if len(cs) != len(es) {
		return false
	}
	for v := range es {
		if _, ok := cs[v]; !ok {
			return false
		}
	}
	return true
}

// containsAll reports whether every expected value appears in the context
// list. Context may carry extras; an empty expected list always passes.
func containsAll(contextValues, expected []string) bool {
	set := toSet(contextValues)
	for _, e := range expected {
		if _, ok := set[e]; !ok {
			return false
		}
	}
	return true
}
