package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for the reservation error taxonomy. Typed errors below report
// errors.Is(err, <sentinel>) so callers can branch without errors.As.
var (
	ErrConflict         = errors.New("slot conflict")
	ErrPartialCommit    = errors.New("cart rejected: one or more slots conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrValidation       = errors.New("validation failed")
)

const (
	ConflictReasonBooked = "booked"
	ConflictReasonHeld   = "held"
)

type SlotConflict struct {
	CourtID   string `json:"courtId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Reason    string `json:"reason"`
}

func (c SlotConflict) String() string {
	return fmt.Sprintf("%s %s %s (%s)", c.CourtID, c.Date, c.StartTime, c.Reason)
}

type ConflictError struct {
	Conflicts []SlotConflict
}

func (e *ConflictError) Error() string {
	return "slot conflict: " + joinConflicts(e.Conflicts)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// PartialCommitError rejects a multi-item cart as a whole; nothing was written.
type PartialCommitError struct {
	Conflicts []SlotConflict
	Attempted int
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("%d of %d cart items conflict: %s", len(e.Conflicts), e.Attempted, joinConflicts(e.Conflicts))
}

func (e *PartialCommitError) Is(target error) bool {
	return target == ErrPartialCommit || target == ErrConflict
}

type StoreUnavailableError struct {
	Store string
	Op    string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s unavailable during %s", e.Store, e.Op)
	}
	return fmt.Sprintf("%s unavailable during %s: %v", e.Store, e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func NewStoreUnavailable(store, op string, err error) error {
	return &StoreUnavailableError{Store: store, Op: op, Err: err}
}

// NewConflict returns a ConflictError for a single item and a
// PartialCommitError when the rejected cart held more than one item.
func NewConflict(conflicts []SlotConflict, attempted int) error {
	if attempted > 1 {
		return &PartialCommitError{Conflicts: conflicts, Attempted: attempted}
	}
	return &ConflictError{Conflicts: conflicts}
}

// ConflictsOf extracts the per-slot details carried by a conflict error.
func ConflictsOf(err error) ([]SlotConflict, bool) {
	var pce *PartialCommitError
	if errors.As(err, &pce) {
		return pce.Conflicts, true
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Conflicts, true
	}
	return nil, false
}

func joinConflicts(cs []SlotConflict) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
