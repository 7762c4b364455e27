package course

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GCS-TeeTimeService/internal/domain"
	"github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/condition"
	"github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
	"github.com/m04kA/GCS-TeeTimeService/internal/service/course/models"
)

// Service сервис конфигурации поля: настройки расписания и тарифов,
// override'ы состояния на конкретные даты
type Service struct {
	settingsRepo  SettingsRepository
	conditionRepo ConditionRepository
	log           Logger
}

// NewService создает новый экземпляр сервиса конфигурации поля
func NewService(settingsRepo SettingsRepository, conditionRepo ConditionRepository, log Logger) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		conditionRepo: conditionRepo,
		log:           log,
	}
}

// GetSettings возвращает текущие настройки поля.
// Если настройки не сконфигурированы, возвращаются дефолты.
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return models.FromDomainSettings(domain.DefaultCourseSettings()), nil
		}
		return nil, fmt.Errorf("%w: get settings: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(cfg), nil
}

// UpdateSettings частично обновляет настройки поля.
// Изменение действует только на будущие расчёты: подтверждённые
// бронирования сохраняют цены и слоты, с которыми были созданы.
func (s *Service) UpdateSettings(ctx context.Context, req models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if !req.Actor.IsStaff() {
		return nil, fmt.Errorf("%w: settings are staff only", ErrAccessDenied)
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return nil, fmt.Errorf("%w: get settings: %v", ErrInternal, err)
		}
		current = domain.DefaultCourseSettings()
	}

	req.ApplyTo(current)

	if err := current.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("%w: upsert settings: %v", ErrInternal, err)
	}

	s.log.Info("Course settings updated by user %d: %s-%s every %d min",
		req.Actor.UserID, updated.OpenTime, updated.CloseTime, updated.SlotIntervalMinutes)

	return models.FromDomainSettings(updated), nil
}

// GetCondition возвращает override состояния поля на дату.
// Отсутствие override'а - не ошибка конфигурации, а обычное состояние.
func (s *Service) GetCondition(ctx context.Context, date time.Time) (*models.ConditionResponse, error) {
	c, err := s.conditionRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, condition.ErrConditionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrConditionNotFound, date.Format(domain.DateFormat))
		}
		return nil, fmt.Errorf("%w: get condition: %v", ErrInternal, err)
	}
	return models.FromDomainCondition(c), nil
}

// SetCondition устанавливает состояние поля на дату (перезаписывает
// существующий override)
func (s *Service) SetCondition(ctx context.Context, req models.SetConditionRequest) (*models.ConditionResponse, error) {
	if !req.Actor.IsStaff() {
		return nil, fmt.Errorf("%w: conditions are staff only", ErrAccessDenied)
	}

	overall := domain.OverallCondition(req.OverallCondition)
	if !overall.IsValid() {
		return nil, fmt.Errorf("%w: unknown condition %q", ErrInvalidInput, req.OverallCondition)
	}
	if req.HolesAvailable < domain.MinHolesAvailable || req.HolesAvailable > domain.MaxHolesAvailable {
		return nil, fmt.Errorf("%w: holes available must be between %d and %d",
			ErrInvalidInput, domain.MinHolesAvailable, domain.MaxHolesAvailable)
	}

	saved, err := s.conditionRepo.Upsert(ctx, &domain.CourseCondition{
		Date:             req.Date,
		OverallCondition: overall,
		HolesAvailable:   req.HolesAvailable,
		Notes:            req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upsert condition: %v", ErrInternal, err)
	}

	s.log.Info("Course condition for %s set to %s (%d holes) by user %d",
		req.Date.Format(domain.DateFormat), overall, req.HolesAvailable, req.Actor.UserID)

	return models.FromDomainCondition(saved), nil
}

// ClearCondition удаляет override состояния поля на дату,
// возвращая дату к обычному режиму работы
func (s *Service) ClearCondition(ctx context.Context, req models.ClearConditionRequest) error {
	if !req.Actor.IsStaff() {
		return fmt.Errorf("%w: conditions are staff only", ErrAccessDenied)
	}

	if err := s.conditionRepo.Delete(ctx, req.Date); err != nil {
		if errors.Is(err, condition.ErrConditionNotFound) {
			return fmt.Errorf("%w: %s", ErrConditionNotFound, req.Date.Format(domain.DateFormat))
		}
		return fmt.Errorf("%w: delete condition: %v", ErrInternal, err)
	}

	s.log.Info("Course condition for %s cleared by user %d",
		req.Date.Format(domain.DateFormat), req.Actor.UserID)
	return nil
}
