package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
)

func chunk(source string, seq int, content string) domain.Chunk {
	return domain.Chunk{Source: source, Seq: seq, Content: content}
}

func TestRetrieve_EmptyChunks(t *testing.T) {
	assert.Empty(t, Retrieve("some query", nil, 3))
}

func TestRetrieve_EmptyVocabulary(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("ref.txt", 1, "the and of in"),
	}

	// Stopwords only on both sides: no vocabulary, no results, no panic.
	assert.Empty(t, Retrieve("a the of", chunks, 3))
}

func TestRetrieve_RanksRelevantChunkFirst(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("ref.txt", 1, "company incorporation requires articles association memorandum"),
		chunk("ref.txt", 2, "employment contracts define salary holiday entitlements"),
		chunk("ref.txt", 3, "incorporation application forms list shareholder details"),
	}

	results := Retrieve("incorporation articles association", chunks, 3)
	require.NotEmpty(t, results)
	assert.Equal(t, "ref.txt::chunk1", results[0].Source)
}

func TestRetrieve_ScoresPositiveDescending(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("ref.txt", 1, "jurisdiction courts adgm arbitration"),
		chunk("ref.txt", 2, "director register members shares"),
		chunk("ref.txt", 3, "completely unrelated zoological taxonomy"),
	}

	results := Retrieve("jurisdiction adgm courts", chunks, 10)
	require.NotEmpty(t, results)
	for i, r := range results {
		assert.Greater(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0+1e-9)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score, r.Score)
		}
	}
}

func TestRetrieve_NeverExceedsTopK(t *testing.T) {
	chunks := make([]domain.Chunk, 0, 10)
	for i := 1; i <= 10; i++ {
		chunks = append(chunks, chunk("ref.txt", i, "jurisdiction clause number wording"))
	}

	results := Retrieve("jurisdiction clause", chunks, 3)
	assert.LessOrEqual(t, len(results), 3)
}

func TestRetrieve_FewerThanKPositive(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("ref.txt", 1, "jurisdiction courts"),
		chunk("ref.txt", 2, "zoological taxonomy specimens"),
	}

	results := Retrieve("jurisdiction", chunks, 5)
	require.Len(t, results, 1)
	assert.Equal(t, "ref.txt::chunk1", results[0].Source)
}

func TestRetrieve_Deterministic(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("a.txt", 1, "incorporation articles association requirements"),
		chunk("b.txt", 1, "memorandum association share capital"),
		chunk("b.txt", 2, "register members directors particulars"),
	}

	first := Retrieve("articles association register", chunks, 3)
	second := Retrieve("articles association register", chunks, 3)
	assert.Equal(t, first, second)
}

func TestRetrieve_TieBreakKeepsChunkOrder(t *testing.T) {
	chunks := []domain.Chunk{
		chunk("ref.txt", 1, "identical wording here"),
		chunk("ref.txt", 2, "identical wording here"),
	}

	results := Retrieve("identical wording", chunks, 2)
	require.Len(t, results, 2)
	assert.Equal(t, "ref.txt::chunk1", results[0].Source)
	assert.Equal(t, "ref.txt::chunk2", results[1].Source)
	assert.Equal(t, results[0].Score, results[1].Score)
}

func TestFormatContext(t *testing.T) {
	results := []domain.RetrievalResult{
		{Source: "ref.txt::chunk2", Content: "passage text", Score: 0.4211},
	}

	ctx := FormatContext(results)
	assert.Contains(t, ctx, "--- Source: ref.txt::chunk2 (sim=0.421) ---")
	assert.Contains(t, ctx, "passage text")
}

func TestFormatContext_Empty(t *testing.T) {
	assert.Equal(t, "", FormatContext(nil))
}
