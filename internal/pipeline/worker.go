package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/priorart/patdoc/internal/assemble"
	"github.com/priorart/patdoc/internal/parser"
	"github.com/priorart/patdoc/internal/store"
	"github.com/priorart/patdoc/internal/textmodel"
)

// Worker processes a single ingestion job: parse, assemble, analyze,
// store.
type Worker struct {
	an  textmodel.Analyzer
	st  *store.Store
	log *slog.Logger

	pdfFallback  bool
	parseStats   *StageStats
	analyzeStats *StageStats
}

func NewWorker(an textmodel.Analyzer, st *store.Store, log *slog.Logger, pdfFallback bool, parseStats, analyzeStats *StageStats) *Worker {
	return &Worker{
		an:           an,
		st:           st,
		log:          log,
		pdfFallback:  pdfFallback,
		parseStats:   parseStats,
		analyzeStats: analyzeStats,
	}
}

// Process runs the full pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: parse the source bytes into a sectioned document.
	job.SetStatus(StatusParsing, "parsing")
	parseStart := time.Now()

	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = w.pdfFallback
	}

	src, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		src.Title = job.Title
	}
	w.parseStats.Record(time.Since(parseStart).Milliseconds())

	// Dedup on the parsed text, not the raw bytes, so re-encoded copies
	// of the same publication are still caught.
	hash := ContentHashHex([]byte(src.PlainText()))
	job.SetContentHash(hash)
	if existing := w.st.FindByHash(hash); existing != "" {
		log.Info("duplicate document, skipping", "existing_doc_id", existing)
		job.SetDocID(existing)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	if ctx.Err() != nil {
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	// Phase 2: assemble the patent document model.
	job.SetStatus(StatusAssembling, "assembling")
	doc, err := assemble.Build(w.an, src)
	if err != nil {
		log.Error("assembly failed", "error", err)
		job.AddError(fmt.Sprintf("assemble: %s", err))
		job.SetStatus(StatusFailed, "assembling")
		return
	}

	// Phase 3: warm the lazy caches so the stored document is read-only
	// from here on. The model does no internal locking; eager computation
	// is what makes sharing it across request handlers safe.
	job.SetStatus(StatusAnalyzing, "analyzing")
	analyzeStart := time.Now()

	paragraphs, sentences := 0, 0
	if desc := doc.Description(); desc != nil {
		desc.SentenceSegment()
		paragraphs = desc.ParagraphCount()
		sentences = desc.SentenceCount()
	}
	tokens := doc.UnfilteredCounter().Total()
	doc.CharacterCounter()
	doc.BagOfWords(textmodel.BagOptions{CleanNonWords: true, CleanStopwords: true, StemWords: true})
	w.analyzeStats.Record(time.Since(analyzeStart).Milliseconds())

	job.SetCounts(paragraphs, sentences, doc.Claims().ClaimCount(), tokens)

	docID := job.DocID
	if docID == "" {
		docID = hash[:16]
		job.SetDocID(docID)
	}
	w.st.Put(&store.Record{
		DocID:       docID,
		Filename:    job.Filename,
		ContentHash: hash,
		CreatedAt:   job.CreatedAt,
		Doc:         doc,
	})

	log.Info("document ingested",
		"doc_id", docID,
		"paragraphs", paragraphs,
		"sentences", sentences,
		"claims", doc.Claims().ClaimCount(),
		"tokens", tokens,
	)
	job.SetStatus(StatusCompleted, "done")
}
