// Package model содержит доменные структуры для кружков, их участников и событий по спискам
package model

// Activity описывает кружок: описание, расписание, вместимость и текущий список участников.
type Activity struct {
	Name            string   `json:"-" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// SpotsLeft возвращает количество свободных мест (не меньше нуля).
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// Confirmation — подтверждение успешной операции над списком участников.
type Confirmation struct {
	Message string `json:"message"`
}
