package usecase

import (
	"context"
	"time"

	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/entity"
	"sakura-community/services/community/internal/repo/persistent"
)

// HealthUnavailableMessage is the only error text a health report exposes.
const HealthUnavailableMessage = "Database unavailable"

type HealthUseCase interface {
	Check(ctx context.Context) *entity.HealthReport
}

type healthUseCase struct {
	healthRepo persistent.HealthRepository
	now        func() time.Time
	logger     *logger.Logger
}

func NewHealthUseCase(healthRepo persistent.HealthRepository, logger *logger.Logger) HealthUseCase {
	return &healthUseCase{
		healthRepo: healthRepo,
		now:        time.Now,
		logger:     logger,
	}
}

// Check never fails; an unreachable store is reported in the result.
func (uc *healthUseCase) Check(ctx context.Context) *entity.HealthReport {
	report := &entity.HealthReport{Timestamp: uc.now().UTC()}

	if err := uc.healthRepo.Ping(ctx); err != nil {
		uc.logger.Error("Health check ping failed: %v", err)
		return uc.disconnected(report)
	}

	counts, err := uc.healthRepo.TableCounts(ctx)
	if err != nil {
		uc.logger.Error("Health check table counts failed: %v", err)
		return uc.disconnected(report)
	}

	report.Status = entity.HealthOK
	report.Database = "Connected"
	report.Tables = counts
	return report
}

func (uc *healthUseCase) disconnected(report *entity.HealthReport) *entity.HealthReport {
	report.Status = entity.HealthError
	report.Database = "Disconnected"
	report.Error = HealthUnavailableMessage
	return report
}
