package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"Wrapped not found", fmt.Errorf("loading: %w", ErrMessageNotFound), codes.NotFound},
		{"Removed message", ErrMessageRemoved, codes.FailedPrecondition},
		{"Admin removal", ErrAdminCannotBeRemoved, codes.PermissionDenied},
		{"Bad credentials", ErrInvalidCredentials, codes.Unauthenticated},
		{"Validation", fmt.Errorf("%w: body", ErrInvalidCommand), codes.InvalidArgument},
		{"Unknown", fmt.Errorf("disk on fire"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			st, ok := status.FromError(MapToGRPCError(tt.err))
			req.True(ok)
			req.Equal(tt.code, st.Code())
		})
	}
}

func TestMapToGRPCError_Nil_And_Status(t *testing.T) {
	req := require.New(t)
	req.NoError(MapToGRPCError(nil))

	original := status.Error(codes.Canceled, "gone")
	req.Equal(original, MapToGRPCError(original))
}
