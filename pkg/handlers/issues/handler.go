package issues

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/idfwu/ccem/pkg/adapters"
	"github.com/idfwu/ccem/pkg/models/api"
	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/idfwu/ccem/pkg/services/issues"
	"github.com/rs/zerolog"
)

type DocumentProvider interface {
	Document(ctx context.Context) (domain.IssueDocument, error)
}

type Handler struct {
	provider DocumentProvider
}

func NewHandler(provider DocumentProvider) *Handler {
	return &Handler{provider: provider}
}

// GetDocument serves the same JSON the emitter writes to disk.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	doc, err := h.provider.Document(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build issue document")
		http.Error(w, "failed to build issue document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := issues.EncodeDocument(w, doc); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode issue document")
	}
}

func (h *Handler) ListPhases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	doc, err := h.provider.Document(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build issue document")
		http.Error(w, "failed to build issue document", http.StatusInternalServerError)
		return
	}

	response := make([]api.PhaseSummary, 0, len(doc.Epic.Phases))
	for _, phase := range doc.Epic.Phases {
		response = append(response, adapters.MapPhaseSummaryDomainToApi(phase))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode phases")
	}
}
