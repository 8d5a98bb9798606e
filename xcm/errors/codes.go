package errors

import "fmt"

type ErrorCode uint16

func (ec ErrorCode) String() string {
	return fmt.Sprintf("[Error Code: %d]", ec)
}

const (
	// lookup errors 1000 - 1049
	ErrCodeUnknownInstructionError ErrorCode = 1000
	ErrCodeIncompleteTableError    ErrorCode = 1001

	// metering errors 1050 - 1099
	ErrCodeWeightLimitExceededError ErrorCode = 1050
)
