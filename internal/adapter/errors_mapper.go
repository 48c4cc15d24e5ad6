package adapter

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mapGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrCommunication, err)
	}

	switch st.Code() {
	case codes.OK:
		return nil
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument,
		codes.FailedPrecondition,
		codes.OutOfRange,
		codes.AlreadyExists,
		codes.PermissionDenied,
		codes.Unauthenticated,
		codes.Unimplemented:
		return fmt.Errorf("%w: %s: %s", ErrServiceRejected, st.Code(), st.Message())
	default:
		return fmt.Errorf("%w: %s: %s", ErrCommunication, st.Code(), st.Message())
	}
}
