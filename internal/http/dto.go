// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "activities-service/internal/model"

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type activityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// activitiesResponse — объект «название кружка → описание».
type activitiesResponse map[string]activityResponse

func newActivitiesResponse(activities []model.Activity) activitiesResponse {
	resp := make(activitiesResponse, len(activities))
	for _, a := range activities {
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		resp[a.Name] = activityResponse{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	return resp
}
