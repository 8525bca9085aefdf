// Package plan compiles a parsed SELECT statement into an executable plan.
//
// The planner walks a token tree produced by the token package, extracts
// the projection list, the source table and the optional WHERE predicate,
// resolves the table through an injected Resolver, and returns an
// immutable ExecutionPlan a downstream executor can run without touching
// SQL text again. Planning performs no I/O, never mutates its input tree,
// and is safe to run concurrently on independent statements.
//
// Every failure is one of the package's sentinel errors (ErrMalformedTree,
// ErrMissingFromClause, ...) wrapped with the offending clause text, so
// callers can classify with errors.Is.
//
// Example usage:
//
//	root, err := token.Parse("SELECT name, age FROM users WHERE age = 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := plan.Build(root, resolver)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := plan.Marshal(p)
package plan
