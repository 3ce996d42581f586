package app

import "fmt"

// FatalErrorType classifies the conditions that terminate a run.
type FatalErrorType int

const (
	// MissingDependency indicates a required external tool is absent.
	MissingDependency FatalErrorType = iota
	// NotAuthenticated indicates the hosting CLI has no session.
	NotAuthenticated
	// InitFailed indicates local repository initialization failed.
	InitFailed
	// StageFailed indicates staging failed after any recovery attempt.
	StageFailed
	// CommitFailed indicates the commit failed after any recovery attempt.
	CommitFailed
	// RemoteCreateFailed indicates the hosted repository could not be created.
	RemoteCreateFailed
)

// String returns the taxonomy name for the error type.
func (t FatalErrorType) String() string {
	switch t {
	case MissingDependency:
		return "MissingDependency"
	case NotAuthenticated:
		return "NotAuthenticated"
	case InitFailed:
		return "InitFailed"
	case StageFailed:
		return "StageFailed"
	case CommitFailed:
		return "CommitFailed"
	case RemoteCreateFailed:
		return "RemoteCreateFailed"
	default:
		return "Unknown"
	}
}

// FatalError is an application-layer error that ends the run.
type FatalError struct {
	// Type is the error classification.
	Type FatalErrorType
	// Message is the user-facing message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *FatalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FatalError) Unwrap() error {
	return e.Cause
}

// NewFatalError creates a new FatalError.
func NewFatalError(errType FatalErrorType, message string, cause error) *FatalError {
	return &FatalError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewMissingDependencyError creates a missing-tool error with remediation text.
func NewMissingDependencyError(tool, hint string) *FatalError {
	return NewFatalError(MissingDependency,
		fmt.Sprintf("required tool %q was not found on PATH (%s)", tool, hint), nil)
}

// NewNotAuthenticatedError creates a missing-session error.
func NewNotAuthenticatedError(cause error) *FatalError {
	return NewFatalError(NotAuthenticated,
		"gh is not authenticated; run 'gh auth login' and try again", cause)
}

// NewInitError creates a repository initialization error.
func NewInitError(cause error) *FatalError {
	return NewFatalError(InitFailed, "failed to initialize repository", cause)
}

// NewStageError creates a staging error.
func NewStageError(cause error) *FatalError {
	return NewFatalError(StageFailed, "failed to stage files", cause)
}

// NewCommitError creates a commit error.
func NewCommitError(cause error) *FatalError {
	return NewFatalError(CommitFailed, "failed to create initial commit", cause)
}

// NewRemoteCreateError creates a remote creation error.
func NewRemoteCreateError(name string, cause error) *FatalError {
	return NewFatalError(RemoteCreateFailed,
		fmt.Sprintf("failed to create remote repository %q (a repository with that name may already exist)", name),
		cause)
}
