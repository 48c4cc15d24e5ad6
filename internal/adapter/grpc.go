package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-cinema-client/internal/cinemapb"
	"github.com/MKhiriev/go-cinema-client/internal/config"
	"github.com/MKhiriev/go-cinema-client/internal/logger"
	"github.com/MKhiriev/go-cinema-client/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// GRPCCinemaAdapter is the gRPC implementation of [CinemaAdapter].
type GRPCCinemaAdapter struct {
	conn           *grpc.ClientConn
	requestTimeout time.Duration

	logger *logger.Logger
}

var _ CinemaAdapter = (*GRPCCinemaAdapter)(nil)

// NewGRPCCinemaAdapter creates the client connection to the cinema service
// described by cfg. The connection is established lazily on the first call,
// so an unreachable service surfaces as [ErrCommunication] from that call.
//
// Keep-alive pings are sent every cfg.KeepAliveTime even when no call is in
// flight, so an idle session or a quiet subscription keeps its connection
// through NATs and proxies. extra options are appended last; tests use them
// to plug in an in-memory dialer.
func NewGRPCCinemaAdapter(cfg config.ClientAdapter, logger *logger.Logger, extra ...grpc.DialOption) (*GRPCCinemaAdapter, error) {
	a := &GRPCCinemaAdapter{
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepaliveParams(cfg)),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(cinemapb.Codec{})),
		grpc.WithChainUnaryInterceptor(a.unaryInterceptor),
		grpc.WithChainStreamInterceptor(a.streamInterceptor),
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(cfg.GRPCAddress, opts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client for %q: %w", cfg.GRPCAddress, err)
	}
	a.conn = conn

	logger.Info().
		Str("address", cfg.GRPCAddress).
		Dur("keepalive_time", cfg.KeepAliveTime).
		Dur("keepalive_timeout", cfg.KeepAliveTimeout).
		Msg("cinema adapter created")

	return a, nil
}

// Conn exposes the underlying connection for connectivity monitoring.
func (a *GRPCCinemaAdapter) Conn() *grpc.ClientConn {
	return a.conn
}

// ListFilms implements [CinemaAdapter] via /cinema.Cinema/GetFilms.
func (a *GRPCCinemaAdapter) ListFilms(ctx context.Context) ([]models.Film, error) {
	ctx, cancel := a.withRequestTimeout(ctx)
	defer cancel()

	out := new(cinemapb.Films)
	if err := a.conn.Invoke(ctx, cinemapb.Cinema_GetFilms_FullMethodName, new(cinemapb.Empty), out); err != nil {
		return nil, fmt.Errorf("list films: %w", mapGRPCError(err))
	}

	return filmsFromProto(out), nil
}

// ListFilmScreenings implements [CinemaAdapter] via
// /cinema.Cinema/GetFilmScreenings.
func (a *GRPCCinemaAdapter) ListFilmScreenings(ctx context.Context, filmID int32) ([]models.Screening, error) {
	ctx, cancel := a.withRequestTimeout(ctx)
	defer cancel()

	in := &cinemapb.GetFilmScreeningsRequest{FilmId: filmID}
	out := new(cinemapb.Screenings)
	if err := a.conn.Invoke(ctx, cinemapb.Cinema_GetFilmScreenings_FullMethodName, in, out); err != nil {
		return nil, fmt.Errorf("list screenings of film %d: %w", filmID, mapGRPCError(err))
	}

	return screeningsFromProto(out), nil
}

// SubscribeScreenings implements [CinemaAdapter] via the server-streaming
// /cinema.Cinema/SubscribeScreenings. The stream carries no deadline.
func (a *GRPCCinemaAdapter) SubscribeScreenings(ctx context.Context, filter models.SubscriptionFilter) (ScreeningStream, error) {
	stream, err := a.conn.NewStream(ctx, &cinemapb.Cinema_ServiceDesc.Streams[0], cinemapb.Cinema_SubscribeScreenings_FullMethodName)
	if err != nil {
		return nil, fmt.Errorf("subscribe screenings: %w", mapGRPCError(err))
	}

	// io.EOF from SendMsg means the stream already ended; the status is
	// reported by the first Recv.
	if err = stream.SendMsg(subscribeRequestToProto(filter)); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("subscribe screenings: %w", mapGRPCError(err))
	}
	if err = stream.CloseSend(); err != nil {
		return nil, fmt.Errorf("subscribe screenings: %w", mapGRPCError(err))
	}

	return &screeningStream{ctx: ctx, stream: stream}, nil
}

// Close implements [CinemaAdapter].
func (a *GRPCCinemaAdapter) Close() error {
	a.logger.Info().Msg("closing cinema adapter")
	return a.conn.Close()
}

// keepaliveParams pings even without active calls, so an idle session keeps
// its connection.
func keepaliveParams(cfg config.ClientAdapter) keepalive.ClientParameters {
	return keepalive.ClientParameters{
		Time:                cfg.KeepAliveTime,
		Timeout:             cfg.KeepAliveTimeout,
		PermitWithoutStream: true,
	}
}

func (a *GRPCCinemaAdapter) withRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.requestTimeout)
}

type screeningStream struct {
	ctx    context.Context
	stream grpc.ClientStream
}

func (s *screeningStream) Recv() ([]models.Screening, error) {
	out := new(cinemapb.Screenings)
	if err := s.stream.RecvMsg(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if ctxErr := s.ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("receive screenings: %w", mapGRPCError(err))
	}

	return screeningsFromProto(out), nil
}
