package audit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/idfwu/ccem/pkg/adapters"
	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/rs/zerolog"
)

type StatusProvider interface {
	Status(ctx context.Context) (domain.AuditStatus, error)
}

type Handler struct {
	provider StatusProvider
}

func NewHandler(provider StatusProvider) *Handler {
	return &Handler{provider: provider}
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	status, err := h.provider.Status(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load security audit status")
		http.Error(w, "failed to load security audit status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapAuditStatusDomainToApi(status)); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode security audit status")
	}
}
