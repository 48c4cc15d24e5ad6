package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cinema-client/internal/logger"
	"github.com/MKhiriev/go-cinema-client/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TraceIDMetadataKey is the metadata header carrying the trace id of the
// command that issued the call.
const TraceIDMetadataKey = "x-trace-id"

func withTraceMetadata(ctx context.Context) context.Context {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		return metadata.AppendToOutgoingContext(ctx, TraceIDMetadataKey, traceID)
	}
	return ctx
}

func (a *GRPCCinemaAdapter) unaryInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	start := time.Now()
	err := invoker(withTraceMetadata(ctx), method, req, reply, cc, opts...)

	a.callLogger(ctx).Debug().
		Str("method", method).
		Dur("duration", time.Since(start)).
		Str("code", status.Code(err).String()).
		Msg("unary call finished")

	return err
}

func (a *GRPCCinemaAdapter) streamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	stream, err := streamer(withTraceMetadata(ctx), desc, cc, method, opts...)

	a.callLogger(ctx).Debug().
		Str("method", method).
		Str("code", status.Code(err).String()).
		Msg("stream opened")

	return stream, err
}

// callLogger prefers the command-scoped logger stored in ctx.
func (a *GRPCCinemaAdapter) callLogger(ctx context.Context) *logger.Logger {
	if _, ok := utils.GetTraceIDFromContext(ctx); ok {
		return logger.FromContext(ctx)
	}
	return a.logger
}
