package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/priorart/patdoc/internal/codec"
	"github.com/priorart/patdoc/internal/store"
	"github.com/priorart/patdoc/internal/textmodel"
)

// patentSummary is the display representation of a stored document.
func patentSummary(rec *store.Record) map[string]any {
	doc := rec.Doc
	paragraphs := 0
	sentences := 0
	if desc := doc.Description(); desc != nil {
		paragraphs = desc.ParagraphCount()
		sentences = desc.SentenceCount()
	}
	return map[string]any{
		"doc_id":          rec.DocID,
		"number":          doc.Number,
		"title":           doc.Title,
		"classifications": doc.Classifications,
		"paragraphs":      paragraphs,
		"sentences":       sentences,
		"claims":          doc.Claims().ClaimCount(),
		"has_figures":     doc.Figures() != nil,
		"filename":        rec.Filename,
		"created_at":      rec.CreatedAt.Format(time.RFC3339),
	}
}

func (s *Server) handleListPatents(w http.ResponseWriter, r *http.Request) {
	records := s.orchestrator.Store().List()
	patents := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		patents = append(patents, patentSummary(rec))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"patents": patents})
}

func (s *Server) handleGetPatent(w http.ResponseWriter, r *http.Request) {
	rec := s.lookup(w, r)
	if rec == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patentSummary(rec))
}

func (s *Server) handleDeletePatent(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.orchestrator.Store().Delete(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}

func (s *Server) handlePatentStats(w http.ResponseWriter, r *http.Request) {
	rec := s.lookup(w, r)
	if rec == nil {
		return
	}
	doc := rec.Doc

	rate := s.cfg.DefaultReadingRate
	if v := r.URL.Query().Get("rate"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			jsonError(w, "rate must be a positive number", http.StatusBadRequest)
			return
		}
		rate = f
	}
	readingTime, err := doc.ReadingTime(rate)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tokenCounter := doc.UnfilteredCounter()
	charCounter := doc.CharacterCounter()
	// JSON object keys must be strings; rune keys are rendered as the
	// characters themselves.
	chars := make(map[string]int, len(charCounter))
	for r, n := range charCounter {
		chars[string(r)] = n
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":               rec.DocID,
		"tokens":               tokenCounter.Total(),
		"unique_tokens":        len(tokenCounter),
		"character_counts":     chars,
		"reading_rate":         rate,
		"reading_time_minutes": readingTime,
	})
}

func (s *Server) handleBagOfWords(w http.ResponseWriter, r *http.Request) {
	rec := s.lookup(w, r)
	if rec == nil {
		return
	}

	q := r.URL.Query()
	opts := textmodel.BagOptions{
		CleanNonWords:  q.Get("non_words") != "false",
		CleanStopwords: q.Get("stopwords") != "false",
		StemWords:      q.Get("stem") != "false",
	}
	bag := rec.Doc.BagOfWords(opts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":  rec.DocID,
		"options": opts,
		"tokens":  bag,
	})
}

func (s *Server) handleEncoding(w http.ResponseWriter, r *http.Request) {
	rec := s.lookup(w, r)
	if rec == nil {
		return
	}

	mode := r.URL.Query().Get("mode")
	var codes []int
	switch mode {
	case "", "printable":
		mode = "printable"
		codes = rec.Doc.EncodePrintable()
	case "codepoints":
		codes = rec.Doc.EncodeCodepoints()
	default:
		jsonError(w, "mode must be printable or codepoints", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id": rec.DocID,
		"mode":   mode,
		"codes":  codes,
	})
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Codes []int `json:"codes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	text, err := codec.DecodePrintable(req.Codes)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, codec.ErrInvalidCode) {
			status = http.StatusBadRequest
		}
		jsonError(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"text": text})
}

// lookup fetches the record for the docID URL parameter, writing a 404
// and returning nil when absent.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) *store.Record {
	docID := chi.URLParam(r, "docID")
	rec := s.orchestrator.Store().Get(docID)
	if rec == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return nil
	}
	return rec
}
