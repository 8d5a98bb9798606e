package errors

import (
	stdErrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

// CodedError is an error that carries a stable error code.
type CodedError interface {
	Code() ErrorCode
	error
}

// Is is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return stdErrors.Is(err, target)
}

// As is a convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return stdErrors.As(err, target)
}

// HasErrorCode reports whether any error in err's chain carries the given code.
func HasErrorCode(err error, code ErrorCode) bool {
	for ; err != nil; err = stdErrors.Unwrap(err) {
		if coded, ok := err.(CodedError); ok && coded.Code() == code {
			return true
		}
	}
	return false
}

// UnknownInstructionError indicates a name that does not belong to the
// instruction set.
type UnknownInstructionError struct {
	name string
}

// NewUnknownInstructionError constructs an UnknownInstructionError
func NewUnknownInstructionError(name string) *UnknownInstructionError {
	return &UnknownInstructionError{name: name}
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("%s unknown instruction %q", e.Code(), e.name)
}

// Name returns the name that could not be resolved.
func (e *UnknownInstructionError) Name() string {
	return e.name
}

// Code returns the error code for this error
func (e *UnknownInstructionError) Code() ErrorCode {
	return ErrCodeUnknownInstructionError
}

func IsUnknownInstructionError(err error) bool {
	return HasErrorCode(err, ErrCodeUnknownInstructionError)
}

// IncompleteTableError is returned when a weight table does not hold exactly
// one record for every dispatchable instruction.
type IncompleteTableError struct {
	missing []string
	extra   []string
}

// NewIncompleteTableError constructs an IncompleteTableError
func NewIncompleteTableError(missing, extra []string) *IncompleteTableError {
	m := append([]string(nil), missing...)
	x := append([]string(nil), extra...)
	sort.Strings(m)
	sort.Strings(x)
	return &IncompleteTableError{missing: m, extra: x}
}

func (e *IncompleteTableError) Error() string {
	var parts []string
	if len(e.missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing records for [%s]", strings.Join(e.missing, ", ")))
	}
	if len(e.extra) > 0 {
		parts = append(parts, fmt.Sprintf("records for unknown instructions [%s]", strings.Join(e.extra, ", ")))
	}
	return fmt.Sprintf("%s incomplete weight table: %s", e.Code(), strings.Join(parts, "; "))
}

// Missing returns the names of the instructions without a record.
func (e *IncompleteTableError) Missing() []string {
	return e.missing
}

// Extra returns the names of records that match no instruction.
func (e *IncompleteTableError) Extra() []string {
	return e.extra
}

// Code returns the error code for this error
func (e *IncompleteTableError) Code() ErrorCode {
	return ErrCodeIncompleteTableError
}

func IsIncompleteTableError(err error) bool {
	return HasErrorCode(err, ErrCodeIncompleteTableError)
}

// WeightLimitExceededError is returned when charging an instruction would
// take the consumed weight past the meter's limit.
type WeightLimitExceededError struct {
	instruction string
	required    weight.Weight
	remaining   weight.Weight
}

// NewWeightLimitExceededError constructs a WeightLimitExceededError
func NewWeightLimitExceededError(instruction string, required, remaining weight.Weight) *WeightLimitExceededError {
	return &WeightLimitExceededError{
		instruction: instruction,
		required:    required,
		remaining:   remaining,
	}
}

func (e *WeightLimitExceededError) Error() string {
	return fmt.Sprintf(
		"%s weight limit exceeded by %s: required %s, remaining %s",
		e.Code(),
		e.instruction,
		e.required,
		e.remaining,
	)
}

// Required returns the weight the rejected operation needed.
func (e *WeightLimitExceededError) Required() weight.Weight {
	return e.required
}

// Remaining returns the budget left when the operation was rejected.
func (e *WeightLimitExceededError) Remaining() weight.Weight {
	return e.remaining
}

// Code returns the error code for this error
func (e *WeightLimitExceededError) Code() ErrorCode {
	return ErrCodeWeightLimitExceededError
}

func IsWeightLimitExceededError(err error) bool {
	return HasErrorCode(err, ErrCodeWeightLimitExceededError)
}
