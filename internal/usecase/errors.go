package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrRenderFailed  = errors.New("render document failed")
	ErrStorageFailed = errors.New("write document failed")
)

// ExportError carries the failed step of an export and the file involved.
type ExportError struct {
	Op       string
	FileName string
	BaseErr  error
	Detail   error
}

func (e *ExportError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("%s (op: %s, file: %s): %v", e.BaseErr, e.Op, e.FileName, e.Detail)
	}
	return fmt.Sprintf("%s (op: %s, file: %s)", e.BaseErr, e.Op, e.FileName)
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *ExportError) Unwrap() []error {
	if e.Detail == nil {
		return []error{e.BaseErr}
	}
	return []error{e.BaseErr, e.Detail}
}

func newRenderError(file, op string, detail error) error {
	return &ExportError{Op: op, FileName: file, BaseErr: ErrRenderFailed, Detail: detail}
}

func newStorageError(file string, detail error) error {
	return &ExportError{Op: "write", FileName: file, BaseErr: ErrStorageFailed, Detail: detail}
}
