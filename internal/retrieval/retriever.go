package retrieval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// DefaultTopK is the default number of passages returned per query.
const DefaultTopK = 3

// Retrieve scores every chunk against the query by TF-IDF cosine
// similarity and returns the top-k results with strictly positive scores,
// sorted descending. Ties keep original chunk order.
//
// It is a pure function: the vector space is fitted per call over
// {chunks, query}, so identical inputs always produce identical output,
// and independent queries can run concurrently without coordination.
// An empty chunk set or an empty joint vocabulary returns no results;
// retrieval is advisory and never blocks the rest of the pipeline.
func Retrieve(query string, chunks []domain.Chunk, topK int) []domain.RetrievalResult {
	if len(chunks) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	texts := make([]string, 0, len(chunks)+1)
	for _, c := range chunks {
		texts = append(texts, c.Content)
	}
	texts = append(texts, query)

	v := newVectorizer(texts)
	if v == nil {
		return nil
	}

	queryVec := v.vector(query)
	results := make([]domain.RetrievalResult, 0, len(chunks))
	for _, c := range chunks {
		score := dot(v.vector(c.Content), queryVec)
		if score > 0 {
			results = append(results, domain.RetrievalResult{
				Source:  c.Label(),
				Content: c.Content,
				Score:   score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// FormatContext renders retrieval results as the prompt-ready context
// block. Returns "" for no results.
func FormatContext(results []domain.RetrievalResult) string {
	if len(results) == 0 {
		return ""
	}
	sections := make([]string, len(results))
	for i, r := range results {
		sections[i] = fmt.Sprintf("--- Source: %s (sim=%.3f) ---\n%s", r.Source, r.Score, r.Content)
	}
	return strings.Join(sections, "\n\n")
}
