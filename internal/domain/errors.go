package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// UploadError marks an object-storage failure for a specific form field.
// The save workflow aborts before touching the database, so no partial
// state can result from it.
type UploadError struct {
	Field string
	Err   error
}

func (e UploadError) Error() string {
	if e.Field == "" {
		return "upload failed"
	}
	return fmt.Sprintf("upload failed for %s", e.Field)
}

func (e UploadError) Unwrap() error { return e.Err }

// PartialSyncError reports the save sequence that stopped after the order
// row was already written. Step names the call that failed so staff can
// retry just that part.
type PartialSyncError struct {
	OrderID int64
	Step    string
	Err     error
}

func (e PartialSyncError) Error() string {
	return fmt.Sprintf("order saved, but failed to sync participants (%s)", e.Step)
}

func (e PartialSyncError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUpload(err error) bool {
	var target UploadError
	return errors.As(err, &target)
}

func IsPartialSync(err error) bool {
	var target PartialSyncError
	return errors.As(err, &target)
}
