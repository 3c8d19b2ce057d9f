package search_listings

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/vintaro/marketplace-service/internal/app/listing/domain"
	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
)

// FirestoreSearchQuery executes planned listing searches against Firestore.
//
// Failure policy: every error degrades to an empty page instead of
// propagating. A missing composite index is an ops problem and must not
// break the browse experience; it is logged as a warning. Other query
// failures are logged as errors. No retries anywhere.
type FirestoreSearchQuery struct {
	Client *firestore.Client
	Log    *zap.Logger
}

func NewFirestoreSearchQuery(client *firestore.Client, log *zap.Logger) *FirestoreSearchQuery {
	if log == nil {
		log = zap.NewNop()
	}
	return &FirestoreSearchQuery{Client: client, Log: log}
}

// Search runs at most three sequential reads: the optional cursor document
// fetch, the main paged query, and the optional count aggregation.
func (q *FirestoreSearchQuery) Search(ctx context.Context, params dto.SearchParams, role domain.Role) (*dto.SearchResult, error) {
	plan := buildPlan(params, role)
	col := q.Client.Collection(m_listing.Collection)

	fq := col.Query
	for _, f := range plan.filters {
		fq = fq.Where(f.Path, f.Op, f.Value)
	}
	for _, o := range plan.orders {
		dir := firestore.Asc
		if o.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(o.Path, dir)
	}

	if params.LastID != "" {
		cursor, err := col.Doc(params.LastID).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				// Stale cursor: the document was deleted between pages.
				// Terminal empty page.
				return &dto.SearchResult{Listings: []*dto.ListingDTO{}}, nil
			}
			q.Log.Error("listing search: cursor fetch failed",
				zap.String("lastId", params.LastID), zap.Error(err))
			return &dto.SearchResult{Listings: []*dto.ListingDTO{}}, nil
		}
		fq = fq.StartAfter(cursor)
	}

	docs, ok := q.fetchPage(ctx, fq.Limit(pageSize))
	if !ok {
		return &dto.SearchResult{Listings: []*dto.ListingDTO{}}, nil
	}

	now := time.Now().UTC()
	out := &dto.SearchResult{
		Listings: make([]*dto.ListingDTO, 0, len(docs)),
		HasMore:  len(docs) == pageSize,
	}
	if len(docs) > 0 {
		out.LastVisibleID = docs[len(docs)-1].Ref.ID
	}
	for _, doc := range docs {
		rec := m_listing.FromDoc(doc)
		if !plan.passesPostFilters(rec, now) {
			continue
		}
		out.Listings = append(out.Listings, recordToDTO(rec))
	}

	if plan.wantCount {
		if n, ok := q.countMatches(ctx, col, plan.countFilters); ok {
			out.TotalCount = &n
		}
	}

	return out, nil
}

// fetchPage drains the paged query, degrading to an empty page on failure.
func (q *FirestoreSearchQuery) fetchPage(ctx context.Context, fq firestore.Query) ([]*firestore.DocumentSnapshot, bool) {
	iter := fq.Documents(ctx)
	defer iter.Stop()

	var docs []*firestore.DocumentSnapshot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return docs, true
		}
		if err != nil {
			if status.Code(err) == codes.FailedPrecondition {
				// Missing composite index. Deployment issue; fail open.
				q.Log.Warn("listing search: missing index, returning empty page", zap.Error(err))
			} else {
				q.Log.Error("listing search: query failed", zap.Error(err))
			}
			return nil, false
		}
		docs = append(docs, doc)
	}
}

// countMatches runs the server-side count aggregation over the equality
// filters only. A count failure never fails the search; the field is
// simply omitted.
func (q *FirestoreSearchQuery) countMatches(ctx context.Context, col *firestore.CollectionRef, filters []fieldFilter) (int64, bool) {
	cq := col.Query
	for _, f := range filters {
		cq = cq.Where(f.Path, f.Op, f.Value)
	}

	results, err := cq.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		q.Log.Warn("listing search: count aggregation failed", zap.Error(err))
		return 0, false
	}
	v, ok := results["total"]
	if !ok {
		return 0, false
	}
	pbv, ok := v.(*firestorepb.Value)
	if !ok {
		return 0, false
	}
	return pbv.GetIntegerValue(), true
}

func recordToDTO(rec *m_listing.Record) *dto.ListingDTO {
	return &dto.ListingDTO{
		ListingID:      rec.ID,
		Title:          rec.Title,
		TitleLowercase: rec.TitleLowercase,
		Keywords:       rec.Keywords,
		Category:       rec.Category,
		Subcategory:    rec.Subcategory,
		Condition:      rec.Condition,
		Size:           rec.Size,
		Price:          rec.Price,
		PriceNum:       rec.PriceNum,
		PriceDen:       rec.PriceDen,
		Year:           rec.Year,
		SellerID:       rec.SellerID,
		SellerVerified: rec.SellerVerified,
		Featured:       rec.Featured,
		Untimed:        rec.Untimed,
		Multibuy:       rec.Multibuy,
		Status:         rec.Status,
		ReleaseAt:      rec.ReleaseAt,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
		Views:          rec.Views,
	}
}
