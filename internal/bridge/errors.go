// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrExited is returned by Handle methods when the worker is gone: the
	// request could not be queued, or it was dropped without a reply because
	// the worker stopped first.
	ErrExited = errors.New("bridge worker exited")

	// ErrInvalidCredentials is returned by Login when the cookie string
	// cannot be carried in an HTTP header.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrClientConstruction is returned when a remote API client cannot be
	// built from the supplied credentials or configuration.
	ErrClientConstruction = errors.New("client construction failed")
)

// WorkerPanic is what [Bridge.Shutdown] panics with when the worker goroutine
// died from a panic. Value is the original panic value.
type WorkerPanic struct {
	Value any
	Stack []byte
}

func (p *WorkerPanic) Error() string {
	return fmt.Sprintf("bridge worker panicked: %v", p.Value)
}

// Unwrap returns the panic value if it was an error.
func (p *WorkerPanic) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}
