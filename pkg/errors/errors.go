package errors

import (
	stderrors "errors"
	"io/fs"
)

// Exit codes returned by the CLI
const (
	ExitOK                = 0
	ExitGeneral           = 1
	ExitUsage             = 2
	ExitConfig            = 3
	ExitFilesystem        = 4
	ExitEngine            = 5
	ExitMissingDependency = 6
)

type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	ExitCode int    `json:"-"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so wrapped copies of a predefined error compare equal to it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Predefined errors
var (
	ErrMissingDependency = &AppError{
		Code:     "missing_dependency",
		Message:  "Missing dependency",
		ExitCode: ExitMissingDependency,
	}
	ErrEngine = &AppError{
		Code:     "engine",
		Message:  "Minification failed",
		ExitCode: ExitEngine,
	}
	ErrConfig = &AppError{
		Code:     "config",
		Message:  "Invalid configuration",
		ExitCode: ExitConfig,
	}
	ErrUsage = &AppError{
		Code:     "usage",
		Message:  "Invalid usage",
		ExitCode: ExitUsage,
	}
)

func New(code string, message string, exitCode int, err error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Err:      err,
	}
}

// Wrap attaches err to a copy of kind with a more specific message.
func Wrap(kind *AppError, err error, message string) *AppError {
	if message == "" {
		message = kind.Message
	}
	return &AppError{
		Code:     kind.Code,
		Message:  message,
		ExitCode: kind.ExitCode,
		Err:      err,
	}
}

// MissingDependency reports a collaborator that was never configured.
func MissingDependency(name string) *AppError {
	return Wrap(ErrMissingDependency, nil, "Missing "+name)
}

// ExitCode maps an error chain to a process exit code.
// Filesystem errors are recognised by their *fs.PathError; anything
// implementing EngineError() is treated as an engine failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.ExitCode != 0 {
		return appErr.ExitCode
	}

	var engineErr interface{ EngineError() bool }
	if stderrors.As(err, &engineErr) && engineErr.EngineError() {
		return ExitEngine
	}

	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) {
		return ExitFilesystem
	}

	return ExitGeneral
}
