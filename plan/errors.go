package plan

import "errors"

// Planning failure taxonomy. Every error the planner returns wraps one of
// these sentinels, so callers classify with errors.Is and map each kind to
// a client-side failure. None of them is retryable: planning is
// deterministic and an identical statement yields an identical error.
var (
	// ErrMalformedTree is returned when the statement root is not a group node.
	ErrMalformedTree = errors.New("malformed token tree")

	// ErrMissingFromClause is returned when no FROM keyword is found.
	ErrMissingFromClause = errors.New("missing FROM clause")

	// ErrMissingProjection is returned when no SELECT clause is found.
	ErrMissingProjection = errors.New("missing SELECT projection")

	// ErrInvalidTableName is returned when a table name fails the identifier grammar.
	ErrInvalidTableName = errors.New("invalid table name")

	// ErrUnsupportedPredicate is returned for any predicate beyond a single
	// "column = literal" comparison. Unsupported filters are rejected, never
	// dropped: a silently ignored filter would return rows the statement
	// did not ask for.
	ErrUnsupportedPredicate = errors.New("unsupported predicate")

	// ErrInvalidLiteral is returned when a predicate literal cannot be normalized.
	ErrInvalidLiteral = errors.New("invalid literal")

	// ErrInvalidProjection is returned when a projection list member is not
	// a plain identifier.
	ErrInvalidProjection = errors.New("invalid projection")
)
