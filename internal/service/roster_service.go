// Package service содержит бизнес-логику записи студентов в кружки и отписки от них.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"activities-service/internal/events"
	"activities-service/internal/metrics"
	"activities-service/internal/model"
)

const (
	opSignUp     = "signup"
	opUnregister = "unregister"

	defaultPublishTimeout = 2 * time.Second
)

// RosterRepository описывает контракт реестра кружков для бизнес-слоя.
type RosterRepository interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
	SignUp(ctx context.Context, activityName, email string) (model.Activity, error)
	Unregister(ctx context.Context, activityName, email string) (model.Activity, error)
}

// MetricsRecorder описывает метрики, которые обновляет сервис.
type MetricsRecorder interface {
	ObserveOperation(operation, outcome string)
	PublishFailed()
}

// RosterService проверяет входные данные, вызывает реестр и переводит
// его ошибки в AppError. После успешного изменения обновляет метрики и публикует событие.
type RosterService struct {
	repo           RosterRepository
	publisher      events.Publisher
	metrics        MetricsRecorder
	log            *slog.Logger
	publishTimeout time.Duration
	now            func() time.Time
}

// NewRosterService создаёт сервис для работы со списками участников.
func NewRosterService(repo RosterRepository, publisher events.Publisher, recorder MetricsRecorder, log *slog.Logger) *RosterService {
	return &RosterService{
		repo:           repo,
		publisher:      publisher,
		metrics:        recorder,
		log:            log,
		publishTimeout: defaultPublishTimeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// ListActivities возвращает все кружки с текущими списками участников.
func (s *RosterService) ListActivities(ctx context.Context) ([]model.Activity, error) {
	activities, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list activities", err)
	}
	return activities, nil
}

// SignUp записывает студента в кружок.
func (s *RosterService) SignUp(ctx context.Context, activityName, email string) (model.Confirmation, error) {
	if err := validateRosterInput(activityName, email); err != nil {
		s.metrics.ObserveOperation(opSignUp, err.Code)
		return model.Confirmation{}, err
	}

	activity, err := s.repo.SignUp(ctx, activityName, email)
	if err != nil {
		appErr := fromRepository(err, "sign up")
		s.metrics.ObserveOperation(opSignUp, appErr.Code)
		return model.Confirmation{}, appErr
	}

	s.afterChange(ctx, opSignUp, model.EventSignedUp, activity, email)

	return model.Confirmation{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Unregister удаляет студента из кружка.
func (s *RosterService) Unregister(ctx context.Context, activityName, email string) (model.Confirmation, error) {
	if err := validateRosterInput(activityName, email); err != nil {
		s.metrics.ObserveOperation(opUnregister, err.Code)
		return model.Confirmation{}, err
	}

	activity, err := s.repo.Unregister(ctx, activityName, email)
	if err != nil {
		appErr := fromRepository(err, "unregister")
		s.metrics.ObserveOperation(opUnregister, appErr.Code)
		return model.Confirmation{}, appErr
	}

	s.afterChange(ctx, opUnregister, model.EventUnregistered, activity, email)

	return model.Confirmation{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// afterChange считает успешную операцию и публикует событие. Ошибка публикации
// только логируется: список участников к этому моменту уже изменён.
func (s *RosterService) afterChange(ctx context.Context, op string, eventType model.RosterEventType, activity model.Activity, email string) {
	s.metrics.ObserveOperation(op, metrics.OutcomeOK)

	event := model.RosterEvent{
		ID:           uuid.NewString(),
		Type:         eventType,
		Activity:     activity.Name,
		Email:        email,
		Participants: len(activity.Participants),
		OccurredAt:   s.now(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(pubCtx, event); err != nil {
		s.metrics.PublishFailed()
		s.log.Warn("failed to publish roster event",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)),
			slog.String("activity", event.Activity),
			slog.Any("err", err),
		)
		return
	}

	s.log.Info("roster changed",
		slog.String("operation", op),
		slog.String("activity", activity.Name),
		slog.String("email", email),
		slog.Int("participants", len(activity.Participants)),
	)
}

// validateRosterInput проверяет обязательные параметры. Формат email не проверяется.
func validateRosterInput(activityName, email string) *AppError {
	if activityName == "" {
		return ErrBadRequest("activity name is required")
	}
	if email == "" {
		return ErrBadRequest("email is required")
	}
	return nil
}
