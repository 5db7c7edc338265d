package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNoEligibleItem  = fmt.Errorf("no eligible vocabulary item: %w", ErrNotFound)
	ErrSessionNotFound = fmt.Errorf("quiz session: %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("vocabulary item: %w", ErrNotFound)
	ErrDrillComplete   = fmt.Errorf("drill complete, every item asked once: %w", ErrNotFound)

	ErrValidation        = errors.New("validation failed")
	ErrDuplicateHeadword = fmt.Errorf("%w: headword already exists", ErrValidation)
	ErrSessionFinished   = fmt.Errorf("%w: quiz session already finished", ErrValidation)

	ErrClassificationFailed = errors.New("word classification failed, set category manually")
)

type LookupError struct {
	Op       string
	Headword string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s %q: %v", e.Op, e.Headword, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
