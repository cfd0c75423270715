package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfig       = errors.New("configuration error")
	ErrCatalog      = errors.New("catalog error")
	ErrService      = errors.New("service error")
	ErrNotFound     = errors.New("not found")
	ErrAmbiguous    = errors.New("ambiguous match")
	ErrNoCandidates = errors.New("no workspaces selected for migration")
	ErrApply        = errors.New("error to update workspace")
	ErrBackupWrite  = errors.New("backup write failed")

	ErrInvalidMigrationParameters = fmt.Errorf("%w: invalid migration parameters", ErrConfig)
)

// ServiceError describes a failed call to the assistant service.
// StatusCode is 0 when the request never got a response.
type ServiceError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, msg)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}
