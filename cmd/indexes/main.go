package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vintaro/marketplace-service/internal/models/m_listing"
)

// A helper that writes firestore.indexes.json with the composite indexes the
// listing search plans require. Deploy with:
//
//	go run ./cmd/indexes -out firestore.indexes.json
//	firebase deploy --only firestore:indexes
//
// Single-field indexes are automatic; only the composite shapes produced by
// the query planner are listed here.
func main() {
	out := flag.String("out", "firestore.indexes.json", "output path")
	flag.Parse()

	doc := indexFile{Indexes: searchIndexes()}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("marshal indexes: %v", err)
	}
	b = append(b, '\n')

	if err := os.WriteFile(*out, b, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Wrote %d composite indexes to %s\n", len(doc.Indexes), *out)
}

type indexFile struct {
	Indexes []index `json:"indexes"`
}

type index struct {
	CollectionGroup string  `json:"collectionGroup"`
	QueryScope      string  `json:"queryScope"`
	Fields          []field `json:"fields"`
}

type field struct {
	FieldPath   string `json:"fieldPath"`
	Order       string `json:"order,omitempty"`
	ArrayConfig string `json:"arrayConfig,omitempty"`
}

func asc(path string) field      { return field{FieldPath: path, Order: "ASCENDING"} }
func desc(path string) field     { return field{FieldPath: path, Order: "DESCENDING"} }
func contains(path string) field { return field{FieldPath: path, ArrayConfig: "CONTAINS"} }

func listings(fields ...field) index {
	return index{
		CollectionGroup: m_listing.Collection,
		QueryScope:      "COLLECTION",
		Fields:          fields,
	}
}

// searchIndexes enumerates the composite shapes the planner emits: a status
// gate, then either a text dimension ordered by folded title, a price or
// year inequality coupled to its sort, or the featured-first browse orders.
// Category is the highest-traffic equality filter, so each shape also gets
// a category-prefixed variant.
func searchIndexes() []index {
	shapes := [][]field{
		// Browse, no range dimension.
		{desc(m_listing.FldFeatured), desc(m_listing.FldCreatedAt)},
		{desc(m_listing.FldFeatured), desc(m_listing.FldViews)},
		{asc(m_listing.FldTitleLowercase)},

		// Keyword token search.
		{contains(m_listing.FldKeywords), asc(m_listing.FldTitleLowercase)},

		// Price range coupled to price sort.
		{asc(m_listing.FldPrice), desc(m_listing.FldCreatedAt)},
		{desc(m_listing.FldPrice), desc(m_listing.FldCreatedAt)},

		// Year range coupled to year sort.
		{asc(m_listing.FldYear), desc(m_listing.FldCreatedAt)},
		{desc(m_listing.FldYear), desc(m_listing.FldCreatedAt)},
	}

	var out []index
	for _, shape := range shapes {
		base := append([]field{asc(m_listing.FldStatus)}, shape...)
		out = append(out, listings(base...))

		withCategory := append([]field{asc(m_listing.FldStatus), asc(m_listing.FldCategory)}, shape...)
		out = append(out, listings(withCategory...))
	}
	return out
}
