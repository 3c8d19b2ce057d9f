package list_wanted

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/vintaro/marketplace-service/internal/app/listing/dto"
	"github.com/vintaro/marketplace-service/internal/models/m_listing"
	"github.com/vintaro/marketplace-service/internal/models/m_wanted"
)

const pageLimit = 50

// FirestoreListWantedQuery lists wanted-to-buy listings, newest first, with
// an optional category filter.
type FirestoreListWantedQuery struct {
	Client *firestore.Client
}

func NewFirestoreListWantedQuery(client *firestore.Client) *FirestoreListWantedQuery {
	return &FirestoreListWantedQuery{Client: client}
}

func (q *FirestoreListWantedQuery) ListWanted(ctx context.Context, category string) ([]*dto.WantedDTO, error) {
	fq := q.Client.Collection(m_wanted.Collection).Query
	if category != "" {
		fq = fq.Where(m_wanted.FldCategory, "==", category)
	}
	fq = fq.OrderBy(m_wanted.FldCreatedAt, firestore.Desc).Limit(pageLimit)

	iter := fq.Documents(ctx)
	defer iter.Stop()

	var out []*dto.WantedDTO
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		data := doc.Data()
		w := &dto.WantedDTO{
			WantedID: doc.Ref.ID,
			Title:    str(data[m_wanted.FldTitle]),
			Category: str(data[m_wanted.FldCategory]),
			BuyerID:  str(data[m_wanted.FldBuyerID]),
			Notes:    str(data[m_wanted.FldNotes]),
		}
		if f, ok := data[m_wanted.FldMaxPrice].(float64); ok {
			w.MaxPrice = f
		}
		if t, ok := m_listing.CoerceTime(data[m_wanted.FldCreatedAt]); ok {
			w.CreatedAt = t
		}
		out = append(out, w)
	}
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
