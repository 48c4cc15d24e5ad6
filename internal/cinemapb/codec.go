package cinemapb

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is reported as the gRPC content-subtype, so requests go out as
// "application/grpc+proto" and stay compatible with any protobuf server.
const CodecName = "proto"

// ErrNotMessage is returned when the codec is handed a value that does not
// implement [Message].
var ErrNotMessage = errors.New("value is not a cinemapb message")

// Codec is a gRPC codec for the messages of this package.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Marshal encodes v, which must implement [Message].
func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotMessage, v)
	}
	return m.MarshalProto()
}

// Unmarshal decodes data into v, which must implement [Message].
func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotMessage, v)
	}
	return m.UnmarshalProto(data)
}

// Name implements [encoding.Codec].
func (Codec) Name() string {
	return CodecName
}
