// internal/rules/evaluate.go
package rules

import (
	"fmt"

	"github.com/solatis/noticegate/internal/types"
)

/*
 * Gate evaluation orchestration.
 *
 * Evaluates a notification's displayIf gate against one RuleContext snapshot
 * with conjunctive short-circuit semantics, left to right:
 *   1. extensionId must equal the running extension's id
 *   2. ideVersion clause (if present) against context.IDEVersion
 *   3. extensionVersion clause (if present) against context.ExtensionVersion
 *   4. every additionalCriteria entry must pass
 *
 * The engine is a pure recursive-descent predicate over immutable data: no
 * I/O, no shared mutable state, safe to call from any number of call sites
 * without synchronization. Context construction (which may block on host
 * introspection) lives in internal/core/host.
 *
 * Short-circuit semantics: an extensionId mismatch returns before any clause
 * or criterion is touched, so a malformed clause behind a mismatched gate
 * never surfaces as an error. Catalog loading runs Validate separately to
 * reject malformed trees up front.
 */

// Engine evaluates notification gates against one immutable RuleContext.
// A new context requires a new Engine; there is no in-place context swap.
type Engine struct {
	extensionID string
	ruleContext types.RuleContext

	// context versions in canonical "v" form, fixed at construction
	ideVersion string
	extVersion string
}

// NewEngine creates an engine bound to the running extension's id and one
// context snapshot. Returns ErrInvalidVersion if the snapshot's version
// strings do not parse; rule evaluation itself then never re-parses them.
func NewEngine(extensionID string, rc types.RuleContext) (*Engine, error) {
	ide, err := canonVersion(rc.IDEVersion)
	if err != nil {
		return nil, fmt.Errorf("ide version: %w", err)
	}
	ext, err := canonVersion(rc.ExtensionVersion)
	if err != nil {
		return nil, fmt.Errorf("extension version: %w", err)
	}
	return &Engine{
		extensionID: extensionID,
		ruleContext: rc,
		ideVersion:  ide,
		extVersion:  ext,
	}, nil
}

// RuleContext returns the snapshot the engine was constructed with.
func (e *Engine) RuleContext() types.RuleContext {
	return e.ruleContext
}

// ShouldDisplayNotification reports whether the notification's displayIf gate
// is fully satisfied against the held context. Purely a predicate; the only
// error paths are unknown clause/criteria variants reached during evaluation.
func (e *Engine) ShouldDisplayNotification(n *types.ToolkitNotification) (bool, error) {
	return e.EvaluateGate(&n.DisplayIf)
}

// EvaluateGate evaluates one displayIf gate, short-circuiting on the first
// failing condition.
func (e *Engine) EvaluateGate(gate *types.DisplayIf) (bool, error) {
	if gate.ExtensionID != e.extensionID {
		return false, nil
	}

	if gate.IDEVersion != nil {
		matched, err := matchClause(gate.IDEVersion, e.ideVersion)
		if err != nil || !matched {
			return false, err
		}
	}

	if gate.ExtensionVersion != nil {
		matched, err := matchClause(gate.ExtensionVersion, e.extVersion)
		if err != nil || !matched {
			return false, err
		}
	}

	for i := range gate.AdditionalCriteria {
		matched, err := matchCriterion(&gate.AdditionalCriteria[i], &e.ruleContext)
		if err != nil || !matched {
			return false, err
		}
	}

	return true, nil
}
