package m_listing

import (
	"time"

	"cloud.google.com/go/firestore"
)

// Record is the persisted shape of a listing document.
// All reads go through FromDoc so that loosely-typed fields (notably
// publicReleaseAt, which historically appeared in three serialized forms)
// are normalized in exactly one place.
type Record struct {
	ID             string
	Title          string
	TitleLowercase string
	Keywords       []string
	Category       string
	Subcategory    string
	Condition      string
	Size           string
	Price          float64
	PriceNum       int64
	PriceDen       int64
	Year           int64
	SellerID       string
	SellerVerified bool
	Featured       bool
	Untimed        bool
	Multibuy       bool
	Status         string
	Draft          bool
	ReleaseAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Views          int64
}

// FromDoc decodes a listing document snapshot into a Record.
func FromDoc(doc *firestore.DocumentSnapshot) *Record {
	data := doc.Data()
	r := &Record{
		ID:             doc.Ref.ID,
		Title:          asString(data[FldTitle]),
		TitleLowercase: asString(data[FldTitleLowercase]),
		Keywords:       asStringSlice(data[FldKeywords]),
		Category:       asString(data[FldCategory]),
		Subcategory:    asString(data[FldSubcategory]),
		Condition:      asString(data[FldCondition]),
		Size:           asString(data[FldSize]),
		Price:          asFloat(data[FldPrice]),
		PriceNum:       asInt(data[FldPriceNum]),
		PriceDen:       asInt(data[FldPriceDen]),
		Year:           asInt(data[FldYear]),
		SellerID:       asString(data[FldSellerID]),
		SellerVerified: asBool(data[FldSellerVerified]),
		Featured:       asBool(data[FldFeatured]),
		Untimed:        asBool(data[FldUntimed]),
		Multibuy:       asBool(data[FldMultibuy]),
		Status:         asString(data[FldStatus]),
		Draft:          asBool(data[FldDraft]),
		Views:          asInt(data[FldViews]),
	}
	if t, ok := CoerceTime(data[FldReleaseAt]); ok {
		r.ReleaseAt = &t
	}
	if t, ok := CoerceTime(data[FldCreatedAt]); ok {
		r.CreatedAt = t
	}
	if t, ok := CoerceTime(data[FldUpdatedAt]); ok {
		r.UpdatedAt = t
	}
	return r
}

// CoerceTime normalizes the timestamp representations that have been observed
// in stored documents: a native Firestore timestamp (decoded as time.Time),
// a serialized {seconds, nanos} map, or a plain date string.
func CoerceTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case map[string]interface{}:
		secs, ok := t["seconds"]
		if !ok {
			secs, ok = t["_seconds"]
		}
		if !ok {
			return time.Time{}, false
		}
		return time.Unix(asInt(secs), 0).UTC(), true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

// BuildCreateMap prepares the canonical field set for a new listing document.
// Callers supply already-derived search fields (titleLowercase, keywords).
func BuildCreateMap(title, titleLowercase string, keywords []string,
	category, subcategory, condition, size string,
	price float64, priceNum, priceDen int64, year int64,
	sellerID string, sellerVerified, featured, untimed, multibuy bool,
	status string, draft bool, releaseAt *time.Time, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		FldTitle:          title,
		FldTitleLowercase: titleLowercase,
		FldKeywords:       keywords,
		FldCategory:       category,
		FldSubcategory:    subcategory,
		FldCondition:      condition,
		FldSize:           size,
		FldPrice:          price,
		FldPriceNum:       priceNum,
		FldPriceDen:       priceDen,
		FldYear:           year,
		FldSellerID:       sellerID,
		FldSellerVerified: sellerVerified,
		FldFeatured:       featured,
		FldUntimed:        untimed,
		FldMultibuy:       multibuy,
		FldStatus:         status,
		FldDraft:          draft,
		FldReleaseAt:      nil,
		FldCreatedAt:      createdAt,
		FldUpdatedAt:      updatedAt,
		FldViews:          int64(0),
	}
	if releaseAt != nil {
		m[FldReleaseAt] = releaseAt.UTC()
	}
	return m
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asStringSlice(v interface{}) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, e := range s {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
