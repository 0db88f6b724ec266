// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/labrat-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the foreground the application runs until the user leaves.
type UI interface {
	// Run blocks until the UI exits.
	Run(ctx context.Context) error
	// Notify delivers a notification poll result. It must not block for
	// long and must be safe to call while Run is active.
	Notify(others models.Others, err error)
	// Counters delivers the unread counters of the latest fetched page.
	// Same constraints as Notify.
	Counters(n models.Notifications)
}
