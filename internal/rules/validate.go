// internal/rules/validate.go
package rules

import (
	"fmt"

	"github.com/solatis/noticegate/internal/types"
)

/*
 * Gate validation.
 *
 * Walks a displayIf tree and rejects malformed nodes before any evaluation
 * happens: unknown clause tags, unknown criteria types, version strings that
 * do not parse, and missing extension ids.
 *
 * Why validate at load time: evaluation short-circuits, so a malformed node
 * behind a non-matching gate would otherwise lie dormant until the one
 * context that reaches it. Catalog loading validates every gate so a schema
 * mismatch fails on the machine that ships the catalog, not in the field.
 */

// Validate checks a displayIf gate for structural errors.
// Returns nil iff every node in the tree is evaluable.
func Validate(gate *types.DisplayIf) error {
	if gate.ExtensionID == "" {
		return types.ErrMissingExtensionID
	}
	if gate.IDEVersion != nil {
		if err := validateClause(gate.IDEVersion); err != nil {
			return fmt.Errorf("ideVersion: %w", err)
		}
	}
	if gate.ExtensionVersion != nil {
		if err := validateClause(gate.ExtensionVersion); err != nil {
			return fmt.Errorf("extensionVersion: %w", err)
		}
	}
	for i := range gate.AdditionalCriteria {
		if err := validateCriterion(&gate.AdditionalCriteria[i]); err != nil {
			return fmt.Errorf("additionalCriteria[%d]: %w", i, err)
		}
	}
	return nil
}

// validateClause checks one clause subtree: known tag, parseable versions.
func validateClause(c *types.ConditionalClause) error {
	switch c.Type {
	case types.ClauseRange:
		if c.LowerInclusive != "" {
			if _, err := canonVersion(c.LowerInclusive); err != nil {
				return err
			}
		}
		if c.UpperExclusive != "" {
			if _, err := canonVersion(c.UpperExclusive); err != nil {
				return err
			}
		}
		return nil
	case types.ClauseExactMatch:
		for _, v := range c.Values {
			if _, err := canonVersion(v); err != nil {
				return err
			}
		}
		return nil
	case types.ClauseOr:
		for i := range c.Clauses {
			if err := validateClause(&c.Clauses[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", types.ErrUnknownClauseType, c.Type)
	}
}

// validateCriterion checks that the criteria type is one of the eight
// enumerated kinds. Value lists are unconstrained; empty lists are legal
// degenerate cases with defined semantics.
func validateCriterion(c *types.CriteriaCondition) error {
	switch c.Type {
	case types.CriteriaOS, types.CriteriaComputeEnv,
		types.CriteriaAuthType, types.CriteriaAuthRegion, types.CriteriaAuthState,
		types.CriteriaAuthScopes,
		types.CriteriaInstalledExtensions, types.CriteriaActiveExtensions:
		return nil
	default:
		return fmt.Errorf("%w: %q", types.ErrUnknownCriteriaType, c.Type)
	}
}
