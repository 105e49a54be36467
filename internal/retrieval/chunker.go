// Package retrieval implements the lexical retrieval engine: word-window
// chunking of the reference corpus and TF-IDF cosine scoring of chunks
// against a query document.
package retrieval

import (
	"strings"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

// DefaultChunkSize is the default chunk size in words.
const DefaultChunkSize = 200

// DefaultChunkOverlap is the default overlap between chunks in words.
const DefaultChunkOverlap = 40

// Chunker splits reference texts into fixed-size overlapping word windows.
// Chunking the same corpus with the same parameters is deterministic.
type Chunker struct {
	chunkSize int
	overlap   int
}

// ChunkerOption configures a Chunker.
type ChunkerOption func(*Chunker)

// WithChunkSize sets the chunk size in words.
func WithChunkSize(size int) ChunkerOption {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in words.
func WithOverlap(overlap int) ChunkerOption {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// NewChunker creates a chunker with the given options.
func NewChunker(opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must stay below chunk size to guarantee forward progress.
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// Split splits a single text into word-window chunks. The last chunk may
// be shorter than the nominal size.
func (c *Chunker) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := c.chunkSize - c.overlap
	chunks := make([]string, 0, len(words)/step+1)
	for i := 0; i < len(words); i += step {
		end := i + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// ChunkCorpus chunks every reference text in order, numbering chunks
// per source starting at 1.
func (c *Chunker) ChunkCorpus(corpus domain.ReferenceCorpus) []domain.Chunk {
	var chunks []domain.Chunk
	for _, ref := range corpus {
		for i, content := range c.Split(ref.Content) {
			chunks = append(chunks, domain.Chunk{
				Source:  ref.Name,
				Seq:     i + 1,
				Content: content,
			})
		}
	}
	return chunks
}
