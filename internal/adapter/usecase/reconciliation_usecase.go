package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
	"adrecon/internal/core/reconcile"
)

// ReconciliationUseCase validates observations, merges them into their
// reconciled records and reprices them. It orchestrates the repository and
// the reconcile package to implement port.ReconciliationUseCase.
type ReconciliationUseCase struct {
	repo     port.ReconciliationRepository
	notifier port.Notifier
	logger   *slog.Logger
}

// NewReconciliationUseCase creates a usecase persisting into repo and
// reporting every outcome to notifier.
func NewReconciliationUseCase(repo port.ReconciliationRepository, notifier port.Notifier, logger *slog.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, notifier: notifier, logger: logger}
}

// SetCampaign overwrites the campaign configuration stored under id.
func (u *ReconciliationUseCase) SetCampaign(ctx context.Context, id string, campaign domain.Campaign) error {
	if err := u.repo.SaveCampaign(ctx, id, campaign); err != nil {
		return fmt.Errorf("save campaign %s: %w", id, err)
	}
	u.emit(ctx, domain.Succeeded(domain.KindCampaignSet, id))
	return nil
}

func (u *ReconciliationUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	return c, nil
}

// SetAggregatedData runs the validation pipeline for obs: the campaign must
// exist, must allow the platform, and the counters of the reporting source
// must not decrease. A valid observation is merged into its record, every
// final count is reconciled again and the record is repriced. The record
// and its index entries are written in one atomic update.
func (u *ReconciliationUseCase) SetAggregatedData(ctx context.Context, obs domain.AggregatedData) (domain.Outcome, error) {
	key := obs.Key()
	subject := key.String()

	campaign, err := u.repo.GetCampaign(ctx, obs.CampaignID)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("get campaign %s: %w", obs.CampaignID, err)
	}
	if campaign == nil {
		return u.emit(ctx, domain.Rejected(domain.KindAggregatedData, subject, domain.CodeCampaignNotFound)), nil
	}
	if !campaign.AllowsPlatform(obs.Platform) {
		return u.emit(ctx, domain.Rejected(domain.KindAggregatedData, subject, domain.CodePlatformNotAllowed)), nil
	}

	var outcome domain.Outcome
	err = u.repo.UpdateReconciledData(ctx, key, func(current *domain.ReconciledData) (*domain.ReconciledData, error) {
		outcome = domain.Succeeded(domain.KindAggregatedData, subject)

		var record domain.ReconciledData
		if current != nil {
			record = *current
		}
		if !record.IsIncrement(obs) {
			outcome = domain.Rejected(domain.KindAggregatedData, subject, domain.CodeNonIncrementalData)
			return nil, nil
		}
		record.Merge(obs)
		if err := reconcile.Recompute(&record, *campaign); err != nil {
			return nil, err
		}
		return &record, nil
	})
	if err != nil {
		u.logger.Error("reconcile observation",
			slog.String("key", subject),
			slog.String("source", string(obs.SourceKind())),
			slog.Any("error", err))
		return domain.Outcome{}, fmt.Errorf("update reconciled data %s: %w", subject, err)
	}
	return u.emit(ctx, outcome), nil
}

func (u *ReconciliationUseCase) GetReconciledData(ctx context.Context, key domain.RecordKey) (*domain.ReconciledData, error) {
	rec, err := u.repo.GetReconciledData(ctx, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, port.ErrNotFound
	}
	return rec, nil
}

func (u *ReconciliationUseCase) ListCampaignsByDate(ctx context.Context, date string) ([]string, error) {
	return u.repo.ListCampaignsByDate(ctx, date)
}

func (u *ReconciliationUseCase) ListDatesByCampaign(ctx context.Context, campaignID string) ([]string, error) {
	return u.repo.ListDatesByCampaign(ctx, campaignID)
}

func (u *ReconciliationUseCase) emit(ctx context.Context, outcome domain.Outcome) domain.Outcome {
	return emit(ctx, u.notifier, outcome)
}

// emit stamps outcome with a fresh id and hands it to the notifier.
func emit(ctx context.Context, notifier port.Notifier, outcome domain.Outcome) domain.Outcome {
	outcome.ID = uuid.NewString()
	notifier.Notify(ctx, outcome)
	return outcome
}
