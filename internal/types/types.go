// Package types provides domain models shared across noticegate components.
//
// Zero-dependency design: types.go and errors.go use only encoding/json so the
// rule engine can be embedded without pulling in CLI or host dependencies. ID
// utilities in ids.go import uuid but are isolated for selective inclusion.
package types

import "encoding/json"

// RuleContext is an immutable snapshot of the host environment, built once per
// evaluation pass. The engine never mutates it; a new snapshot requires a new
// engine instance.
type RuleContext struct {
	// IDEVersion is the host IDE's semantic version.
	IDEVersion string `json:"ideVersion"`

	// ExtensionVersion is the running extension's semantic version.
	ExtensionVersion string `json:"extensionVersion"`

	// OS identifies the current operating system.
	OS string `json:"os"`

	// ComputeEnv classifies the compute environment (e.g. "local", "cloud-shell").
	ComputeEnv string `json:"computeEnv"`

	// AuthTypes lists the enabled authentication connection kinds.
	AuthTypes []string `json:"authTypes"`

	// AuthRegions holds zero or one currently active region.
	AuthRegions []string `json:"authRegions"`

	// AuthStates holds exactly one current authentication status.
	AuthStates []string `json:"authStates"`

	// AuthScopes lists the granted OAuth scopes.
	AuthScopes []string `json:"authScopes"`

	// InstalledExtensions lists ids of all installed companion extensions.
	InstalledExtensions []string `json:"installedExtensions"`

	// ActiveExtensions lists ids of currently active companion extensions.
	ActiveExtensions []string `json:"activeExtensions"`
}

// ClauseType discriminates ConditionalClause variants.
// String alias preserves the tag as it appears in catalog JSON.
type ClauseType string

const (
	// ClauseRange matches versions in [lowerInclusive, upperExclusive).
	ClauseRange ClauseType = "range"

	// ClauseExactMatch matches versions semantically equal to any listed value.
	ClauseExactMatch ClauseType = "exactMatch"

	// ClauseOr matches if any sub-clause matches.
	ClauseOr ClauseType = "or"
)

// ConditionalClause is a version-matching rule. The Type tag selects which
// fields are meaningful: bounds for range, Values for exactMatch, Clauses for
// or. An unrecognized tag is a fatal error, never silently false.
type ConditionalClause struct {
	Type ClauseType `json:"type"`

	// LowerInclusive and UpperExclusive bound a range clause.
	// Empty string means unconstrained on that side.
	LowerInclusive string `json:"lowerInclusive,omitempty"`
	UpperExclusive string `json:"upperExclusive,omitempty"`

	// Values holds candidate versions for an exactMatch clause.
	Values []string `json:"values,omitempty"`

	// Clauses holds sub-clauses for an or clause.
	Clauses []ConditionalClause `json:"clauses,omitempty"`
}

// CriteriaType discriminates CriteriaCondition variants. Each type fixes the
// comparison semantics between the expected values and the context facts.
type CriteriaType string

const (
	// Membership: expected set contains the single context value.
	CriteriaOS         CriteriaType = "OS"
	CriteriaComputeEnv CriteriaType = "ComputeEnv"

	// Intersection: at least one context value is in the expected set.
	CriteriaAuthType   CriteriaType = "AuthType"
	CriteriaAuthRegion CriteriaType = "AuthRegion"
	CriteriaAuthState  CriteriaType = "AuthState"

	// Set equality: context values and expected values are set-equal.
	CriteriaAuthScopes CriteriaType = "AuthScopes"

	// Superset: every expected id is present in the context list.
	CriteriaInstalledExtensions CriteriaType = "InstalledExtensions"
	CriteriaActiveExtensions    CriteriaType = "ActiveExtensions"
)

// CriteriaCondition is an environment-fact rule: Type selects the comparison,
// Values is the expected set. An unrecognized type is a fatal error.
type CriteriaCondition struct {
	Type   CriteriaType `json:"type"`
	Values []string     `json:"values"`
}

// DisplayIf is the top-level gate for one notification. All present fields
// must pass (logical AND, evaluated in declaration order with short-circuit).
type DisplayIf struct {
	// ExtensionID must equal the running extension's id or the notification
	// never displays.
	ExtensionID string `json:"extensionId"`

	// IDEVersion and ExtensionVersion optionally gate on the respective
	// context versions. Nil means no constraint.
	IDEVersion       *ConditionalClause `json:"ideVersion,omitempty"`
	ExtensionVersion *ConditionalClause `json:"extensionVersion,omitempty"`

	// AdditionalCriteria must all pass. Empty or absent is vacuously true.
	AdditionalCriteria []CriteriaCondition `json:"additionalCriteria,omitempty"`
}

// ToolkitNotification is one notification payload. The engine reads only
// DisplayIf; Content is opaque rendering data owned by the host UI layer.
type ToolkitNotification struct {
	ID        NotificationID  `json:"id"`
	DisplayIf DisplayIf       `json:"displayIf"`
	Content   json.RawMessage `json:"content,omitempty"`
}
