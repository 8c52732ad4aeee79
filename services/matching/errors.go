package matching

import "fmt"

type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFlowError(code, msg string) error {
	return &FlowError{
		Code:    code,
		Message: msg,
	}
}

var (
	ErrFlowNotFound      = NewFlowError("flowNotFound", "matching flow not found")
	ErrFlowCancelled     = NewFlowError("flowCancelled", "matching flow was cancelled")
	ErrWasherNotRevealed = NewFlowError("washerNotRevealed", "washer is not in the revealed candidates")
	ErrWasherUnavailable = NewFlowError("washerUnavailable", "washer is not available")
	ErrNoSelection       = NewFlowError("noSelection", "no washer selected")
)
