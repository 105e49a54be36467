package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/LishigaT/adgm-corporate-agent/internal/core/domain"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driving"
	"github.com/LishigaT/adgm-corporate-agent/internal/docx"
	"github.com/LishigaT/adgm-corporate-agent/internal/logger"
	"github.com/LishigaT/adgm-corporate-agent/internal/retrieval"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// maxDocChars caps the per-file text included in the oracle prompt.
const maxDocChars = 8000

// ReviewService runs the document compliance pipeline.
type ReviewService struct {
	corpusStore driven.CorpusStore
	oracle      driven.Oracle      // optional; nil disables the AI stage
	reportStore driven.ReportStore // optional; nil disables audit history
	registry    domain.RequiredDocuments
	chunker     *retrieval.Chunker
	topK        int
}

// Option configures the review service.
type Option func(*ReviewService)

// WithRegistry replaces the required-documents registry.
func WithRegistry(registry domain.RequiredDocuments) Option {
	return func(s *ReviewService) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithChunker replaces the corpus chunker.
func WithChunker(c *retrieval.Chunker) Option {
	return func(s *ReviewService) {
		if c != nil {
			s.chunker = c
		}
	}
}

// WithTopK sets the default number of retrieved passages.
func WithTopK(k int) Option {
	return func(s *ReviewService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithReportStore enables review run persistence.
func WithReportStore(store driven.ReportStore) Option {
	return func(s *ReviewService) {
		s.reportStore = store
	}
}

// NewReviewService creates a review service. The oracle may be nil, in
// which case the AI analysis stage is disabled and only checklist
// verification and retrieval run.
func NewReviewService(corpusStore driven.CorpusStore, oracle driven.Oracle, opts ...Option) *ReviewService {
	s := &ReviewService{
		corpusStore: corpusStore,
		oracle:      oracle,
		registry:    domain.DefaultRequiredDocuments(),
		chunker:     retrieval.NewChunker(),
		topK:        retrieval.DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checklist runs process detection and checklist verification only.
func (s *ReviewService) Checklist(filenames []string, processOverride string) driving.ChecklistResult {
	process := processOverride
	if process == "" {
		process = DetectProcess(filenames)
	}

	result := driving.ChecklistResult{Process: process}
	required, known := s.registry[process]
	if !known {
		return result
	}

	count := len(required)
	result.Required = &count
	result.Missing = missingDocuments(required, filenames)
	return result
}

// RetrievePreview returns the top-matching reference passages for a single
// document without calling the oracle.
func (s *ReviewService) RetrievePreview(ctx context.Context, file driving.InputFile, topK int) ([]domain.RetrievalResult, error) {
	doc, err := docx.Extract(file.Name, file.Content)
	if err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = s.topK
	}

	corpus, err := s.corpusStore.Load(ctx)
	if err != nil {
		// Retrieval is advisory; a missing corpus yields no passages.
		logger.Warn("reference corpus unavailable: %v", err)
		return nil, nil
	}

	chunks := s.chunker.ChunkCorpus(corpus)
	return retrieval.Retrieve(doc.Text(), chunks, topK), nil
}

// Review runs the full pipeline over a batch of files.
func (s *ReviewService) Review(ctx context.Context, files []driving.InputFile, opts driving.ReviewOptions) (*driving.ReviewResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to review", domain.ErrInvalidInput)
	}

	result := &driving.ReviewResult{Annotated: make(map[string][]byte)}
	logger.Reset()
	logger.Section("Document Extraction")

	// Extraction. A bad document is skipped with a notice, never fatal
	// to the batch.
	filenames := make([]string, 0, len(files))
	extracted := make(map[string]*domain.Document, len(files))
	order := make([]string, 0, len(files))
	for _, f := range files {
		filenames = append(filenames, f.Name)
		doc, err := docx.Extract(f.Name, f.Content)
		if err != nil {
			logger.Warn("skipping %s: %v", f.Name, err)
			result.Notices = append(result.Notices,
				fmt.Sprintf("skipped %s: unreadable input (%v)", f.Name, err))
			continue
		}
		logger.Debug("extracted %s: %d paragraphs", f.Name, len(doc.Paragraphs))
		extracted[f.Name] = doc
		order = append(order, f.Name)
	}

	// Checklist verification.
	checklist := s.Checklist(filenames, opts.Process)
	logger.Debug("process: %s", checklist.Process)

	// Retrieval context. An unavailable corpus degrades to an empty
	// context rather than blocking analysis.
	logger.Section("Reference Retrieval")
	topK := opts.TopK
	if topK <= 0 {
		topK = s.topK
	}
	combined := combinedText(order, extracted)
	corpus, err := s.corpusStore.Load(ctx)
	if err != nil {
		logger.Warn("reference corpus unavailable: %v", err)
		result.Notices = append(result.Notices,
			"retrieval skipped: reference corpus unavailable")
	} else {
		chunks := s.chunker.ChunkCorpus(corpus)
		results := retrieval.Retrieve(combined, chunks, topK)
		result.Context = retrieval.FormatContext(results)
		logger.Debug("retrieved %d reference passages", len(results))
	}

	// Oracle analysis.
	var issues []domain.Issue
	if s.oracle == nil {
		result.Notices = append(result.Notices,
			"AI analysis disabled: no oracle configured; checklist and retrieval results only")
	} else if len(extracted) > 0 {
		issues = s.analyze(ctx, extracted, order, result)
	}

	// Annotation, one output per readable input.
	logger.Section("Annotation")
	byDoc := make(map[string][]domain.Issue)
	for _, issue := range issues {
		byDoc[issue.Document] = append(byDoc[issue.Document], issue)
	}
	for _, f := range files {
		if _, ok := extracted[f.Name]; !ok {
			continue
		}
		annotated, err := docx.Annotate(f.Content, byDoc[f.Name])
		if err != nil {
			result.Notices = append(result.Notices,
				fmt.Sprintf("annotation failed for %s: %v", f.Name, err))
			continue
		}
		result.Annotated[f.Name] = annotated
	}

	// The report contract publishes both lists as JSON arrays, never null.
	missing := checklist.Missing
	if missing == nil {
		missing = []string{}
	}
	if issues == nil {
		issues = []domain.Issue{}
	}
	result.Report = domain.ComplianceReport{
		Process:           checklist.Process,
		DocumentsUploaded: len(files),
		RequiredDocuments: checklist.Required,
		MissingDocuments:  missing,
		IssuesFound:       issues,
	}

	s.saveRun(ctx, result)
	return result, nil
}

// analyze calls the oracle and parses its reply, appending degradation
// notices as needed. Oracle failures are contained: the run continues
// with zero issues.
func (s *ReviewService) analyze(ctx context.Context, extracted map[string]*domain.Document, order []string, result *driving.ReviewResult) []domain.Issue {
	logger.Section("Oracle Analysis")

	req := driven.AnalysisRequest{
		Context:       result.Context,
		Documents:     make(map[string]string, len(extracted)),
		DocumentOrder: order,
	}
	for name, doc := range extracted {
		req.Documents[name] = truncateText(doc.Text(), maxDocChars)
	}

	raw, err := s.oracle.Analyze(ctx, req)
	if err != nil {
		logger.Warn("oracle call failed: %v", err)
		result.Notices = append(result.Notices,
			fmt.Sprintf("AI analysis failed: %v", err))
		return nil
	}
	result.RawOracleOutput = raw

	parsed := ParseOracleResponse(raw)
	if !parsed.Structured {
		result.Notices = append(result.Notices,
			"oracle output was not parseable as JSON; raw text preserved, no structured issues extracted")
		return nil
	}
	logger.Debug("oracle reported %d issue(s)", len(parsed.Issues))
	return parsed.Issues
}

// saveRun persists the run for audit history when a report store is
// configured. Persistence failures are reported but never fail the run.
func (s *ReviewService) saveRun(ctx context.Context, result *driving.ReviewResult) {
	if s.reportStore == nil {
		return
	}
	run := &domain.ReportRun{
		ID:              uuid.New().String(),
		Report:          result.Report,
		RawOracleOutput: result.RawOracleOutput,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.reportStore.SaveRun(ctx, run); err != nil {
		logger.Warn("failed to save review run: %v", err)
		result.Notices = append(result.Notices,
			fmt.Sprintf("review run not persisted: %v", err))
	}
}

// truncateText caps a string at max bytes without splitting a UTF-8 rune
// at the cut point.
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// combinedText joins every document's text under a file name heading, the
// same layout used in the oracle prompt.
func combinedText(order []string, docs map[string]*domain.Document) string {
	var out string
	for _, name := range order {
		out += fmt.Sprintf("\n\n--- %s ---\n\n%s", name, docs[name].Text())
	}
	return out
}
