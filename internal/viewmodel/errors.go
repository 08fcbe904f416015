package viewmodel

import (
	"errors"
	"fmt"
)

var (
	ErrUserIDRequired = errors.New("user id is required")
	ErrUnknownField   = errors.New("unknown draft field")
)

// Op names a view model operation that talks to the vault API.
type Op string

const (
	OpRefresh  Op = "refresh"
	OpSave     Op = "save"
	OpGenerate Op = "generate"
)

// OpError tags a failed remote operation. Err is the vaultapi error
// (*vaultapi.TransportError or *vaultapi.ServerError) or a context error.
type OpError struct {
	Op     Op
	UserID string
	Err    error
}

func (e *OpError) Error() string {
	if e.UserID == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s for %q failed: %v", e.Op, e.UserID, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// FailedOp returns the operation tag of err, if err wraps an *OpError.
func FailedOp(err error) (Op, bool) {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Op, true
	}
	return "", false
}
