package cinemapb

import (
	"context"

	"google.golang.org/grpc"
)

// Full method names of the cinema.Cinema service.
const (
	ServiceName                               = "cinema.Cinema"
	Cinema_GetFilms_FullMethodName            = "/cinema.Cinema/GetFilms"
	Cinema_GetFilmScreenings_FullMethodName   = "/cinema.Cinema/GetFilmScreenings"
	Cinema_SubscribeScreenings_FullMethodName = "/cinema.Cinema/SubscribeScreenings"
)

// CinemaServer is the server API for the cinema.Cinema service.
type CinemaServer interface {
	GetFilms(context.Context, *Empty) (*Films, error)
	GetFilmScreenings(context.Context, *GetFilmScreeningsRequest) (*Screenings, error)
	SubscribeScreenings(*SubscribeScreeningsRequest, ScreeningsSender) error
}

// ScreeningsSender is the server side of the SubscribeScreenings stream.
type ScreeningsSender interface {
	Send(*Screenings) error
	Context() context.Context
}

// RegisterCinemaServer registers srv on s. The server must be created with
// grpc.ForceServerCodec([Codec]{}).
func RegisterCinemaServer(s grpc.ServiceRegistrar, srv CinemaServer) {
	s.RegisterService(&Cinema_ServiceDesc, srv)
}

func _Cinema_GetFilms_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CinemaServer).GetFilms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Cinema_GetFilms_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CinemaServer).GetFilms(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Cinema_GetFilmScreenings_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetFilmScreeningsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CinemaServer).GetFilmScreenings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Cinema_GetFilmScreenings_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CinemaServer).GetFilmScreenings(ctx, req.(*GetFilmScreeningsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Cinema_SubscribeScreenings_Handler(srv any, stream grpc.ServerStream) error {
	in := new(SubscribeScreeningsRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(CinemaServer).SubscribeScreenings(in, &screeningsSender{stream})
}

type screeningsSender struct {
	grpc.ServerStream
}

func (x *screeningsSender) Send(m *Screenings) error {
	return x.ServerStream.SendMsg(m)
}

// Cinema_ServiceDesc is the grpc.ServiceDesc for the cinema.Cinema service.
var Cinema_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CinemaServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetFilms",
			Handler:    _Cinema_GetFilms_Handler,
		},
		{
			MethodName: "GetFilmScreenings",
			Handler:    _Cinema_GetFilmScreenings_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeScreenings",
			Handler:       _Cinema_SubscribeScreenings_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "cinema.proto",
}
