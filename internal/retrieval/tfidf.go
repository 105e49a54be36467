package retrieval

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// vectorizer is a TF-IDF vector space fitted jointly over a set of texts.
// The vocabulary is sorted so identical inputs always produce identical
// vectors.
type vectorizer struct {
	vocabulary map[string]int
	idf        []float64
	tokenRE    *regexp.Regexp
	stopwords  map[string]struct{}
}

// newVectorizer fits a vector space over the given texts.
// Returns nil when the joint vocabulary is empty (all stopwords, or no
// tokens at all); callers treat that as an empty retrieval result.
func newVectorizer(texts []string) *vectorizer {
	v := &vectorizer{
		tokenRE:   regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords: stopwords(),
	}

	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(texts))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF keeps terms present in every text from zeroing out.
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return v
}

// vector computes the L2-normalised TF-IDF vector for a text.
func (v *vectorizer) vector(text string) []float64 {
	vec := make([]float64, len(v.idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}

	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	norm := 0.0
	for _, val := range vec {
		norm += val * val
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (v *vectorizer) tokenize(text string) []string {
	raw := v.tokenRE.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, tok := range raw {
		if _, isStop := v.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// dot returns the inner product of two equal-length vectors. Both sides
// are L2-normalised, so this is the cosine similarity.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func stopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "should", "now",
		"shall", "any", "all", "each", "other", "which", "their", "its",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
