package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/fixedpoint"
	"adrecon/internal/core/port"
)

// ProofOfPlayUseCase verifies creative plays against their order and
// accumulates the verified audience per billboard and day.
type ProofOfPlayUseCase struct {
	repo     port.ProofOfPlayRepository
	notifier port.Notifier
	logger   *slog.Logger
}

// NewProofOfPlayUseCase creates a usecase persisting into repo.
func NewProofOfPlayUseCase(repo port.ProofOfPlayRepository, notifier port.Notifier, logger *slog.Logger) *ProofOfPlayUseCase {
	return &ProofOfPlayUseCase{repo: repo, notifier: notifier, logger: logger}
}

// SetOrder stores the order and replaces its billboard inventory.
func (u *ProofOfPlayUseCase) SetOrder(ctx context.Context, id string, order domain.OrderData) error {
	if err := u.repo.SaveOrder(ctx, id, order.Order, order.TargetInventory); err != nil {
		return fmt.Errorf("save order %s: %w", id, err)
	}
	emit(ctx, u.notifier, domain.Succeeded(domain.KindOrderSet, id))
	return nil
}

func (u *ProofOfPlayUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := u.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, port.ErrNotFound
	}
	return o, nil
}

func (u *ProofOfPlayUseCase) GetBillboard(ctx context.Context, orderID, billboardID string) (*domain.Billboard, error) {
	b, err := u.repo.GetBillboard(ctx, orderID, billboardID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, port.ErrNotFound
	}
	return b, nil
}

// SetSessionData checks, in order, that the order exists, that the
// billboard belongs to it, that the creative is booked on it, that the
// play happened inside the order period and that it lasted at least one
// spot. A verified play adds the billboard's daily impression multiplier
// to the spot's audience. A session without an id is assigned one.
func (u *ProofOfPlayUseCase) SetSessionData(ctx context.Context, session domain.SessionData) (domain.Outcome, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	reject := func(code domain.ErrorCode) (domain.Outcome, error) {
		return emit(ctx, u.notifier, domain.Rejected(domain.KindSessionData, session.ID, code)), nil
	}

	order, err := u.repo.GetOrder(ctx, session.OrderID)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("get order %s: %w", session.OrderID, err)
	}
	if order == nil {
		return reject(domain.CodeOrderNotFound)
	}
	billboard, err := u.repo.GetBillboard(ctx, session.OrderID, session.BillboardID)
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("get billboard %s: %w", session.BillboardID, err)
	}
	if billboard == nil {
		return reject(domain.CodeBillboardNotFound)
	}
	if !order.HasCreative(session.CreativeID) {
		return reject(domain.CodeCreativeNotFound)
	}
	if !order.Covers(session.Timestamp) {
		return reject(domain.CodeTimestampOutOfRange)
	}
	if session.Duration < billboard.SpotDuration {
		return reject(domain.CodeDurationTooShort)
	}

	key := session.SpotKey()
	err = u.repo.UpdateVerifiedSpot(ctx, key, func(current domain.VerifiedSpot) (*domain.VerifiedSpot, error) {
		if uint64(current.VerifiedAudience)+uint64(billboard.ImpMultiplierPerDay) > math.MaxUint32 {
			return nil, fixedpoint.ErrOverflow
		}
		current.VerifiedAudience += billboard.ImpMultiplierPerDay
		return &current, nil
	})
	if err != nil {
		u.logger.Error("verify session",
			slog.String("session", session.ID),
			slog.String("spot", key.String()),
			slog.Any("error", err))
		return domain.Outcome{}, fmt.Errorf("update verified spot %s: %w", key, err)
	}
	return emit(ctx, u.notifier, domain.Succeeded(domain.KindSessionData, session.ID)), nil
}

func (u *ProofOfPlayUseCase) GetVerifiedSpot(ctx context.Context, key domain.SpotKey) (*domain.VerifiedSpot, error) {
	s, err := u.repo.GetVerifiedSpot(ctx, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, port.ErrNotFound
	}
	return s, nil
}

func (u *ProofOfPlayUseCase) ListOrderDates(ctx context.Context, orderID string) ([]string, error) {
	return u.repo.ListOrderDates(ctx, orderID)
}
