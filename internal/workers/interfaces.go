// Package workers runs background jobs for the lifetime of the client.
// It defines the Worker interface, a Workers aggregate that starts and
// stops several workers together, and the notification poller.
package workers

import (
	"context"

	"github.com/MKhiriev/labrat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a background job. Start must not block; Stop blocks until the
// job has exited and is safe to call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// OthersSource is where the poller reads notifications from. A
// *bridge.Handle satisfies it; Release is called once the poller stops.
type OthersSource interface {
	Others(ctx context.Context) (models.Others, error)
	Release()
}
