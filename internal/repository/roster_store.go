package repository

import (
	"context"
	"fmt"
	"sync"

	"activities-service/internal/model"
)

// activityEntry хранит состояние одного кружка под собственной блокировкой.
type activityEntry struct {
	mu       sync.RWMutex
	activity model.Activity
	members  map[string]struct{}
}

// snapshot возвращает глубокую копию кружка. Вызывать под блокировкой.
func (e *activityEntry) snapshot() model.Activity {
	a := e.activity
	a.Participants = make([]string, len(e.activity.Participants))
	copy(a.Participants, e.activity.Participants)
	return a
}

// RosterStore — in-memory реестр кружков и их участников.
// Набор кружков фиксируется при создании, изменяются только списки участников.
type RosterStore struct {
	// order и entries не меняются после NewRosterStore, поэтому читаются без блокировки.
	order           []string
	entries         map[string]*activityEntry
	enforceCapacity bool
}

// StoreOption настраивает RosterStore.
type StoreOption func(*RosterStore)

// WithCapacityEnforcement включает или выключает проверку max_participants при записи.
func WithCapacityEnforcement(enabled bool) StoreOption {
	return func(s *RosterStore) {
		s.enforceCapacity = enabled
	}
}

// NewRosterStore создаёт реестр из начальных данных. По умолчанию вместимость проверяется.
func NewRosterStore(seed []model.Activity, opts ...StoreOption) (*RosterStore, error) {
	s := &RosterStore{
		order:           make([]string, 0, len(seed)),
		entries:         make(map[string]*activityEntry, len(seed)),
		enforceCapacity: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := ValidateSeed(seed, s.enforceCapacity); err != nil {
		return nil, err
	}

	for _, a := range seed {
		entry := &activityEntry{
			activity: a,
			members:  make(map[string]struct{}, len(a.Participants)),
		}
		entry.activity.Participants = make([]string, 0, len(a.Participants))
		for _, email := range a.Participants {
			entry.activity.Participants = append(entry.activity.Participants, email)
			entry.members[email] = struct{}{}
		}
		s.order = append(s.order, a.Name)
		s.entries[a.Name] = entry
	}

	return s, nil
}

// ValidateSeed проверяет начальные данные: уникальные непустые названия,
// положительная вместимость, уникальные непустые email участников.
func ValidateSeed(seed []model.Activity, enforceCapacity bool) error {
	names := make(map[string]struct{}, len(seed))
	for i, a := range seed {
		if a.Name == "" {
			return fmt.Errorf("%w: activities[%d].name is required", ErrInvalidSeed, i)
		}
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("%w: duplicate activity %q", ErrInvalidSeed, a.Name)
		}
		names[a.Name] = struct{}{}

		if a.MaxParticipants <= 0 {
			return fmt.Errorf("%w: %q: max_participants must be positive", ErrInvalidSeed, a.Name)
		}
		if enforceCapacity && len(a.Participants) > a.MaxParticipants {
			return fmt.Errorf("%w: %q: %d participants exceed capacity %d",
				ErrInvalidSeed, a.Name, len(a.Participants), a.MaxParticipants)
		}

		emails := make(map[string]struct{}, len(a.Participants))
		for j, email := range a.Participants {
			if email == "" {
				return fmt.Errorf("%w: %q: participants[%d] is empty", ErrInvalidSeed, a.Name, j)
			}
			if _, dup := emails[email]; dup {
				return fmt.Errorf("%w: %q: duplicate participant %s", ErrInvalidSeed, a.Name, email)
			}
			emails[email] = struct{}{}
		}
	}
	return nil
}

// EnforcesCapacity сообщает, проверяет ли реестр вместимость кружков.
func (s *RosterStore) EnforcesCapacity() bool {
	return s.enforceCapacity
}

// ListActivities возвращает копии всех кружков в порядке начальных данных.
func (s *RosterStore) ListActivities(ctx context.Context) ([]model.Activity, error) {
	out := make([]model.Activity, 0, len(s.order))
	for _, name := range s.order {
		entry := s.entries[name]
		entry.mu.RLock()
		out = append(out, entry.snapshot())
		entry.mu.RUnlock()
	}
	return out, nil
}

// GetActivity возвращает копию кружка по точному названию.
func (s *RosterStore) GetActivity(ctx context.Context, name string) (model.Activity, error) {
	entry, ok := s.entries[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	return entry.snapshot(), nil
}

// SignUp записывает email в кружок и возвращает обновлённую копию.
// Проверка дубликата выполняется раньше проверки вместимости.
func (s *RosterStore) SignUp(ctx context.Context, activityName, email string) (model.Activity, error) {
	entry, ok := s.entries[activityName]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if _, exists := entry.members[email]; exists {
		return model.Activity{}, ErrAlreadyRegistered
	}
	if s.enforceCapacity && entry.activity.SpotsLeft() == 0 {
		return model.Activity{}, ErrCapacityExceeded
	}

	entry.activity.Participants = append(entry.activity.Participants, email)
	entry.members[email] = struct{}{}

	return entry.snapshot(), nil
}

// Unregister удаляет email из кружка, сохраняя порядок остальных участников.
func (s *RosterStore) Unregister(ctx context.Context, activityName, email string) (model.Activity, error) {
	entry, ok := s.entries[activityName]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if _, exists := entry.members[email]; !exists {
		return model.Activity{}, ErrNotRegistered
	}

	participants := entry.activity.Participants
	for i, p := range participants {
		if p == email {
			entry.activity.Participants = append(participants[:i], participants[i+1:]...)
			break
		}
	}
	delete(entry.members, email)

	return entry.snapshot(), nil
}
