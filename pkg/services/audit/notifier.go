package audit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/idfwu/ccem/pkg/models/domain"
	"github.com/idfwu/ccem/pkg/store/status"
	"github.com/rs/zerolog"
)

// Reporter renders the audit banner. Findings is written before the marker is
// persisted and Completed after it, so a failed write never claims completion.
type Reporter interface {
	Findings(records []domain.AuditRecord) error
	Completed() error
}

// Notifier shows the security audit at most once per environment.
type Notifier struct {
	store    status.Store
	reporter Reporter
	records  []domain.AuditRecord
}

func NewNotifier(store status.Store, reporter Reporter) *Notifier {
	return &Notifier{
		store:    store,
		reporter: reporter,
		records:  Records(),
	}
}

// Run reads the hook payload from in, and unless the status marker already says
// completed, prints the audit and persists the marker. It reports whether the
// banner was shown. Only reporter and marker write failures are returned.
func (n *Notifier) Run(ctx context.Context, in io.Reader) (bool, error) {
	logger := zerolog.Ctx(ctx)

	payload, err := DecodePayload(in)
	switch {
	case errors.Is(err, ErrPayloadRead):
		logger.Warn().Err(err).Msg("hook payload unreadable, continuing without it")
	case err != nil:
		logger.Debug().Err(err).Msg("hook payload ignored")
	}

	if n.completed(ctx) {
		logger.Debug().Str("path", n.store.Path()).Msg("security audit already completed")
		return false, nil
	}

	if err := n.reporter.Findings(n.records); err != nil {
		return false, fmt.Errorf("failed to render security audit: %w", err)
	}

	err = n.store.Save(ctx, domain.AuditStatus{
		Completed: true,
		Timestamp: payload.TimestampOrUnknown(),
		Audits:    n.records,
	})
	if err != nil {
		return true, fmt.Errorf("failed to persist security audit status: %w", err)
	}

	logger.Info().
		Str("path", n.store.Path()).
		Int("audits", len(n.records)).
		Msg("security audit status saved")

	if err := n.reporter.Completed(); err != nil {
		return true, fmt.Errorf("failed to render security audit: %w", err)
	}
	return true, nil
}

// Status returns the persisted marker, or a not-completed status listing the
// pending audits when no usable marker exists.
func (n *Notifier) Status(ctx context.Context) (domain.AuditStatus, error) {
	st, err := n.store.Load(ctx)
	if err != nil {
		if errors.Is(err, status.ErrNotFound) || errors.Is(err, status.ErrInvalid) {
			return domain.AuditStatus{Audits: Records()}, nil
		}
		return domain.AuditStatus{}, err
	}
	return *st, nil
}

// completed treats a missing, unreadable or invalid marker as not completed.
func (n *Notifier) completed(ctx context.Context) bool {
	st, err := n.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, status.ErrNotFound) {
			zerolog.Ctx(ctx).Debug().Err(err).Msg("status marker unusable, treating audit as pending")
		}
		return false
	}
	return st.Completed
}
