package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err with a sentinel so callers can branch on it with the
// standard errors.Is. Both errors stay in the unwrap chain: the sentinel
// for classification, the cause for errors.As (driver errors etc.).
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return fmt.Errorf("%w: %w", markErr, err)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
