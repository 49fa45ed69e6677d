package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handlePipelineStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"documents":   s.orchestrator.Store().Len(),
		"parse":       s.orchestrator.ParseStats().Snapshot(),
		"analyze":     s.orchestrator.AnalyzeStats().Snapshot(),
	})
}
