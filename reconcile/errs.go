package reconcile

import "errors"

var (
	ErrPassActive = errors.New("reconciliation pass already active")
	ErrPassDone   = errors.New("reconciliation pass already finished")
)
