package model

import "time"

// RosterEventType представляет тип изменения списка участников.
type RosterEventType string

const (
	// EventSignedUp публикуется после записи участника в кружок.
	EventSignedUp RosterEventType = "participant.signed_up"
	// EventUnregistered публикуется после удаления участника из кружка.
	EventUnregistered RosterEventType = "participant.unregistered"
)

// RosterEvent описывает уведомление об изменении списка участников кружка.
type RosterEvent struct {
	ID           string          `json:"id"`
	Type         RosterEventType `json:"type"`
	Activity     string          `json:"activity"`
	Email        string          `json:"email"`
	Participants int             `json:"participants"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
