package marketplace

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/messaging/send_message"
	"github.com/vintaro/marketplace-service/internal/app/order/checkout"
	"github.com/vintaro/marketplace-service/internal/app/wanted/create_wanted"
)

// mapError translates domain sentinel errors into gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Not found
	if errors.Is(err, domain.ErrListingNotFound) || errors.Is(err, domain.ErrWantedNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Permission
	switch {
	case errors.Is(err, domain.ErrNotListingOwner),
		errors.Is(err, domain.ErrRoleForbidden),
		errors.Is(err, send_message.ErrNotParticipant):
		return status.Error(codes.PermissionDenied, err.Error())
	}

	// Invalid argument (validation)
	switch {
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrEmptySeller),
		errors.Is(err, domain.ErrInvalidYear),
		errors.Is(err, domain.ErrReleaseInPast),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrZeroPrice),
		errors.Is(err, send_message.ErrEmptyBody),
		errors.Is(err, create_wanted.ErrEmptyWantedTitle):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	// Failed precondition (lifecycle rules)
	switch {
	case errors.Is(err, domain.ErrListingNotAvailable),
		errors.Is(err, domain.ErrListingSold),
		errors.Is(err, domain.ErrListingNotDraft),
		errors.Is(err, domain.ErrListingNotPending),
		errors.Is(err, domain.ErrListingOnHold),
		errors.Is(err, checkout.ErrOwnListing):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
