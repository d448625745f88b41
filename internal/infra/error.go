package infra

import (
	"equiplend/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

type ErrKind string

const (
	KindNotFound  ErrKind = "not_found"
	KindConflict  ErrKind = "conflict"
	KindDBFailure ErrKind = "db_failure"
)

// RepositoryError classifies infrastructure failures so the use case layer
// can branch on kind without parsing driver errors.
type RepositoryError struct {
	Kind ErrKind
	Op   string
	Err  error
}

func (e *RepositoryError) Error() string {
	return string(e.Kind) + ": " + e.Op + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// WrapRepoErr classifies err and, for db failures, marks the shared sentinel
// so errors.Is keeps working upstream. Not-found and conflict cases are
// marked with their domain sentinels at the call site.
func WrapRepoErr(err error, kind ErrKind, op string) error {
	if err == nil {
		return nil
	}
	re := &RepositoryError{Kind: kind, Op: op, Err: err}
	if kind == KindDBFailure {
		return errs.Mark(re, errs.ErrDatabaseOperationFailed)
	}
	return re
}

func IsKind(err error, kind ErrKind) bool {
	var re *RepositoryError
	if cr.As(err, &re) {
		return re.Kind == kind
	}
	return false
}
