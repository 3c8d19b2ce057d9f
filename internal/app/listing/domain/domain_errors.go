package domain

import "errors"

// Domain errors for the Listing aggregate
var (
	// ErrListingNotFound indicates that a listing with the given ID does not exist.
	ErrListingNotFound = errors.New("listing not found")

	// ErrListingNotAvailable indicates an operation that requires an available
	// listing was attempted on one in another status.
	ErrListingNotAvailable = errors.New("listing is not available")

	// ErrListingSold indicates an attempted mutation of an already sold listing.
	ErrListingSold = errors.New("listing is already sold")

	// ErrListingNotDraft indicates a submit was attempted on a non-draft listing.
	ErrListingNotDraft = errors.New("listing is not a draft")

	// ErrListingNotPending indicates an approval was attempted on a listing
	// that is not pending approval.
	ErrListingNotPending = errors.New("listing is not pending approval")

	// ErrListingOnHold indicates the listing is held and cannot transition here.
	ErrListingOnHold = errors.New("listing is on hold")

	// ErrNotListingOwner indicates the caller does not own the listing.
	ErrNotListingOwner = errors.New("caller does not own this listing")

	// ErrRoleForbidden indicates the caller's role does not permit the operation.
	ErrRoleForbidden = errors.New("role does not permit this operation")
)

// Domain errors for listing validation
var (
	// ErrEmptyTitle indicates an attempt to create/update a listing with an empty title.
	ErrEmptyTitle = errors.New("listing title cannot be empty")

	// ErrTitleTooLong indicates the title exceeds maximum length.
	ErrTitleTooLong = errors.New("listing title exceeds maximum length of 255 characters")

	// ErrEmptyCategory indicates a listing without a category.
	ErrEmptyCategory = errors.New("listing category cannot be empty")

	// ErrEmptySeller indicates a listing without a seller id.
	ErrEmptySeller = errors.New("listing seller id cannot be empty")

	// ErrInvalidYear indicates a year outside the plausible collectible range.
	ErrInvalidYear = errors.New("listing year is out of range")

	// ErrReleaseInPast indicates a scheduled release time that already passed.
	ErrReleaseInPast = errors.New("public release time must be in the future")
)

// Domain errors for Money
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrZeroPrice indicates an attempt to set a zero price.
	ErrZeroPrice = errors.New("price cannot be zero")
)

// Domain errors for wanted listings
var (
	// ErrWantedNotFound indicates the wanted listing does not exist.
	ErrWantedNotFound = errors.New("wanted listing not found")
)
