// Package search provides the quick-filter index over the equity
// universe. The index lives in memory and is rebuilt whenever the store
// refreshes; nothing is persisted.
package search

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/jwyoon/equityboard/internal/equity"
	"github.com/jwyoon/equityboard/internal/universe"
)

// maxResults caps one query's result set
const maxResults = 100

type document struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Codes  string `json:"codes"`
}

// Index is an in-memory quick-filter index. Query results are positions
// into the equity slice the index was built from.
type Index struct {
	idx       bleve.Index
	positions map[string]int
}

// Build indexes the equity set. Records with no name and no identifiers
// are still indexed when they carry a symbol.
func Build(equities []equity.CanonicalEquity) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	positions := make(map[string]int, len(equities))
	batch := idx.NewBatch()
	for i := range equities {
		id := docID(&equities[i], i)
		positions[id] = i

		doc := document{
			Name:  deref(equities[i].Identity.Name),
			Codes: universe.FilterText(&equities[i]),
		}
		if s := equities[i].Identity.Symbol; s != nil {
			doc.Symbol = strings.ToLower(*s)
		}
		if err := batch.Index(id, doc); err != nil {
			return nil, fmt.Errorf("failed to index equity %s: %w", id, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to build search index: %w", err)
	}

	return &Index{idx: idx, positions: positions}, nil
}

// Query returns the positions of matching equities, best match first.
// An empty query matches nothing; callers show the full set instead.
func (ix *Index) Query(q string) ([]int, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}

	lowered := strings.ToLower(q)

	// Exact symbol first, then symbol prefix, then name terms, then a
	// substring sweep over the identifier codes
	exact := bleve.NewTermQuery(lowered)
	exact.SetField("symbol")
	exact.SetBoost(10.0)

	prefix := bleve.NewPrefixQuery(lowered)
	prefix.SetField("symbol")
	prefix.SetBoost(5.0)

	name := bleve.NewMatchQuery(q)
	name.SetField("name")
	name.SetBoost(3.0)

	fuzzy := bleve.NewMatchQuery(q)
	fuzzy.SetField("name")
	fuzzy.SetFuzziness(1)
	fuzzy.SetBoost(1.5)

	codes := bleve.NewWildcardQuery("*" + lowered + "*")
	codes.SetField("codes")
	codes.SetBoost(1.0)

	request := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(exact, prefix, name, fuzzy, codes))
	request.Size = maxResults

	results, err := ix.idx.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matches := make([]int, 0, len(results.Hits))
	for _, hit := range results.Hits {
		if pos, ok := ix.positions[hit.ID]; ok {
			matches = append(matches, pos)
		}
	}
	return matches, nil
}

// Close releases the index
func (ix *Index) Close() error {
	return ix.idx.Close()
}

func docID(eq *equity.CanonicalEquity, position int) string {
	if eq.Identity.ShareClassFIGI != nil {
		return *eq.Identity.ShareClassFIGI
	}
	return fmt.Sprintf("row-%d", position)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
