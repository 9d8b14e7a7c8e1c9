package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrEmptyPool            = fmt.Errorf("participant pool is empty")
	ErrEmptyParticipantName = fmt.Errorf("participant name is empty")
	ErrDuplicateParticipant = fmt.Errorf("participant name is not unique")
	ErrUnexpectedMessage    = fmt.Errorf("unexpected message for this receiver")
	ErrInvalidConfig        = fmt.Errorf("invalid configuration")
)
