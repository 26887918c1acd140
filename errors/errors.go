package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
	ErrInvalidPayload = fmt.Errorf("invalid payload")
	ErrInvalidCursor  = fmt.Errorf("invalid cursor")
	ErrSubmitInFlight = fmt.Errorf("a submission is already in flight")

	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrUnauthenticated    = fmt.Errorf("unauthenticated")
	ErrInvalidHash        = fmt.Errorf("invalid hash format")

	ErrInvalidCommand       = fmt.Errorf("invalid command")
	ErrInvalidContainer     = fmt.Errorf("message must target exactly one channel or conversation")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrMessageRemoved       = fmt.Errorf("message has been removed")
	ErrNestedThread         = fmt.Errorf("replies cannot be threaded")
	ErrNotAuthor            = fmt.Errorf("only the author can change this message")
	ErrBodyTooLong          = fmt.Errorf("message body is too long")
	ErrWorkspaceNotFound    = fmt.Errorf("workspace not found")
	ErrChannelNotFound      = fmt.Errorf("channel not found")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrMemberNotFound       = fmt.Errorf("member not found")
	ErrNotMember            = fmt.Errorf("not a member of this workspace")
	ErrAlreadyMember        = fmt.Errorf("already a member of this workspace")
	ErrNotAdmin             = fmt.Errorf("admin role required")
	ErrAdminCannotBeRemoved = fmt.Errorf("Admin cannot be removed")
	ErrInvalidJoinCode      = fmt.Errorf("invalid join code")

	ErrUploadTokenInvalid  = fmt.Errorf("upload url is invalid or expired")
	ErrUnsupportedMedia    = fmt.Errorf("unsupported media type")
	ErrContentTypeMismatch = fmt.Errorf("content does not match declared type")
	ErrUploadTooLarge      = fmt.Errorf("upload is too large")
	ErrFileNotFound        = fmt.Errorf("file not found")
	ErrFileNotOwned        = fmt.Errorf("file was uploaded by someone else")

	ErrSubscriptionClosed = fmt.Errorf("subscription closed")
	ErrInvalidPanelQuery  = fmt.Errorf("invalid panel query")
	ErrUploadURLNotFound  = fmt.Errorf("upload url not found")
	ErrUploadFailed       = fmt.Errorf("failed to upload image")
)

// Is lets callers importing this package match sentinels without the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// MapToGRPCError translates domain errors into gRPC status errors.
// Unknown errors are reported as Internal without leaking their text.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrAlreadyMember):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrMessageNotFound), errors.Is(err, ErrWorkspaceNotFound),
		errors.Is(err, ErrChannelNotFound), errors.Is(err, ErrConversationNotFound),
		errors.Is(err, ErrMemberNotFound), errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrFileNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrNotAuthor), errors.Is(err, ErrNotMember),
		errors.Is(err, ErrNotAdmin), errors.Is(err, ErrAdminCannotBeRemoved),
		errors.Is(err, ErrFileNotOwned):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrMessageRemoved):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrInvalidPassword), errors.Is(err, ErrInvalidCommand),
		errors.Is(err, ErrInvalidCursor),
		errors.Is(err, ErrInvalidContainer), errors.Is(err, ErrNestedThread),
		errors.Is(err, ErrBodyTooLong), errors.Is(err, ErrInvalidJoinCode),
		errors.Is(err, ErrUploadTokenInvalid), errors.Is(err, ErrUnsupportedMedia),
		errors.Is(err, ErrContentTypeMismatch), errors.Is(err, ErrUploadTooLarge):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
