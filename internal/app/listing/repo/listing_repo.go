package repo

import (
	"cloud.google.com/go/firestore"

	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
	"github.com/vintaro/marketplace-service/internal/pkg/writeplan"
)

// ListingRepo is the Firestore implementation of the write-side repository.
// It returns buffered write ops but never applies them.
type ListingRepo struct{}

func NewListingRepo() *ListingRepo {
	return &ListingRepo{}
}

// buildCreateData constructs the document map used for creation.
// Unexported so tests in the same package can inspect the map.
func buildCreateData(l *domain.Listing) map[string]interface{} {
	var releaseAt = l.ReleaseAt()
	price := l.Price()

	return m_listing.BuildCreateMap(
		l.Title(), l.TitleLowercase(), l.Keywords(),
		l.Category(), l.Subcategory(), l.Condition(), l.Size(),
		price.Float64(), price.Numerator(), price.Denominator(), l.Year(),
		l.SellerID(), l.SellerVerified(), l.Featured(), l.Untimed(), l.Multibuy(),
		string(l.Status()), l.IsDraft(), releaseAt,
		l.CreatedAt().UTC(), l.UpdatedAt().UTC(),
	)
}

// CreateOp builds a create op for a new listing document.
func (r *ListingRepo) CreateOp(l *domain.Listing) *writeplan.Op {
	return &writeplan.Op{
		Kind:       writeplan.OpCreate,
		Collection: m_listing.Collection,
		DocID:      l.ID(),
		Data:       buildCreateData(l),
	}
}

// UpdateOp builds an update op from the aggregate's ChangeTracker.
// Only dirty fields are written; updatedAt is stamped whenever anything
// changed. A title change always rewrites the derived search fields so
// titleLowercase and keywords never drift from the title.
func (r *ListingRepo) UpdateOp(l *domain.Listing) *writeplan.Op {
	if l == nil || l.Changes() == nil || !l.Changes().HasChanges() {
		return nil
	}

	var updates []firestore.Update

	if l.Changes().Dirty(domain.FieldTitle) {
		updates = append(updates,
			firestore.Update{Path: m_listing.FldTitle, Value: l.Title()},
			firestore.Update{Path: m_listing.FldTitleLowercase, Value: l.TitleLowercase()},
			firestore.Update{Path: m_listing.FldKeywords, Value: l.Keywords()},
		)
	}
	if l.Changes().Dirty(domain.FieldSubcategory) {
		updates = append(updates, firestore.Update{Path: m_listing.FldSubcategory, Value: l.Subcategory()})
	}
	if l.Changes().Dirty(domain.FieldCondition) {
		updates = append(updates, firestore.Update{Path: m_listing.FldCondition, Value: l.Condition()})
	}
	if l.Changes().Dirty(domain.FieldSize) {
		updates = append(updates, firestore.Update{Path: m_listing.FldSize, Value: l.Size()})
	}
	if l.Changes().Dirty(domain.FieldPrice) {
		price := l.Price()
		updates = append(updates,
			firestore.Update{Path: m_listing.FldPrice, Value: price.Float64()},
			firestore.Update{Path: m_listing.FldPriceNum, Value: price.Numerator()},
			firestore.Update{Path: m_listing.FldPriceDen, Value: price.Denominator()},
		)
	}
	if l.Changes().Dirty(domain.FieldFeatured) {
		updates = append(updates, firestore.Update{Path: m_listing.FldFeatured, Value: l.Featured()})
	}
	if l.Changes().Dirty(domain.FieldStatus) {
		updates = append(updates,
			firestore.Update{Path: m_listing.FldStatus, Value: string(l.Status())},
			firestore.Update{Path: m_listing.FldDraft, Value: l.IsDraft()},
		)
	}
	if l.Changes().Dirty(domain.FieldReleaseAt) {
		if at := l.ReleaseAt(); at != nil {
			updates = append(updates, firestore.Update{Path: m_listing.FldReleaseAt, Value: at.UTC()})
		} else {
			updates = append(updates, firestore.Update{Path: m_listing.FldReleaseAt, Value: nil})
		}
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, firestore.Update{Path: m_listing.FldUpdatedAt, Value: l.UpdatedAt().UTC()})

	return &writeplan.Op{
		Kind:       writeplan.OpUpdate,
		Collection: m_listing.Collection,
		DocID:      l.ID(),
		Updates:    updates,
	}
}

// ViewIncrementOp bumps the view counter without touching updatedAt;
// a view is not an edit.
func (r *ListingRepo) ViewIncrementOp(listingID string) *writeplan.Op {
	return &writeplan.Op{
		Kind:       writeplan.OpUpdate,
		Collection: m_listing.Collection,
		DocID:      listingID,
		Updates: []firestore.Update{
			{Path: m_listing.FldViews, Value: firestore.Increment(1)},
		},
	}
}
