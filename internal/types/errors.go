package types

import "errors"

// Sentinel errors for noticegate operations.
var (
	// ErrUnknownClauseType indicates a ConditionalClause tag outside
	// {range, exactMatch, or}. Signals a schema mismatch between the
	// catalog producer and this evaluator; never treated as a non-match.
	ErrUnknownClauseType = errors.New("unknown clause type")

	// ErrUnknownCriteriaType indicates a CriteriaCondition type outside the
	// eight enumerated kinds.
	ErrUnknownCriteriaType = errors.New("unknown criteria type")

	// ErrInvalidVersion indicates a string that does not parse as a
	// semantic version.
	ErrInvalidVersion = errors.New("invalid semantic version")

	// ErrMissingExtensionID indicates a displayIf gate without an extensionId.
	ErrMissingExtensionID = errors.New("displayIf missing extensionId")

	// ErrMissingNotificationID indicates a catalog entry without an id.
	ErrMissingNotificationID = errors.New("notification missing id")

	// ErrDuplicateNotificationID indicates two catalog entries sharing an id.
	ErrDuplicateNotificationID = errors.New("duplicate notification id")

	// ErrUnsupportedSchema indicates a catalog schema version this build
	// cannot evaluate.
	ErrUnsupportedSchema = errors.New("unsupported catalog schema version")

	// ErrInvalidAuthState indicates a context snapshot whose authStates does
	// not hold exactly one value.
	ErrInvalidAuthState = errors.New("auth states must hold exactly one value")
)
