package store

import (
	"errors"
	"fmt"
)

// Stage names the step of loading that failed.
type Stage string

const (
	StageFetch    Stage = "fetch"
	StageVerify   Stage = "verify"
	StageOpen     Stage = "open"
	StageSchema   Stage = "schema"
	StageRead     Stage = "read"
	StageValidate Stage = "validate"
)

var (
	// ErrNotSQLite means the snapshot bytes do not start with the SQLite header.
	ErrNotSQLite = errors.New("not a SQLite database")
	// ErrChecksum means the fetched snapshot did not match the expected digest.
	ErrChecksum = errors.New("checksum verification failed")
)

// LoadError reports that a snapshot could not be fetched or loaded. A
// session that sees it must not serve any query.
type LoadError struct {
	Stage  Stage
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("load dataset %s (%s): %v", e.Source, e.Stage, e.Err)
	}
	return fmt.Sprintf("load dataset (%s): %v", e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// withSource fills in Source on a *LoadError that does not have one yet.
func withSource(err error, source string) error {
	var le *LoadError
	if errors.As(err, &le) && le.Source == "" {
		le.Source = source
	}
	return err
}

func validationErr(format string, args ...any) error {
	return &LoadError{Stage: StageValidate, Err: fmt.Errorf(format, args...)}
}
