package workers

import (
	"context"

	"google.golang.org/grpc/connectivity"

	"github.com/MKhiriev/go-cinema-client/internal/logger"
)

// ConnectivityReporter reports the connectivity state of a client
// connection. *grpc.ClientConn satisfies it.
type ConnectivityReporter interface {
	GetState() connectivity.State
	WaitForStateChange(ctx context.Context, sourceState connectivity.State) bool
}

// ConnStateWatcher logs every connectivity transition of the session's
// connection. It stops when ctx is canceled or the connection shuts down.
type ConnStateWatcher struct {
	conn   ConnectivityReporter
	logger *logger.Logger
}

func NewConnStateWatcher(conn ConnectivityReporter, log *logger.Logger) *ConnStateWatcher {
	return &ConnStateWatcher{conn: conn, logger: log}
}

func (w *ConnStateWatcher) Run(ctx context.Context) {
	state := w.conn.GetState()
	w.logger.Debug().Stringer("state", state).Msg("connection state")

	for state != connectivity.Shutdown {
		if !w.conn.WaitForStateChange(ctx, state) {
			return
		}

		next := w.conn.GetState()
		event := w.logger.Debug()
		if next == connectivity.TransientFailure {
			event = w.logger.Warn()
		}
		event.Stringer("from", state).Stringer("to", next).Msg("connection state changed")

		state = next
	}
}
