package http

import (
	"net/http"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	activities, err := h.Roster.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newActivitiesResponse(activities))
}

func (h *Handler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	name, err := activityNameParam(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	email, err := emailQuery(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	conf, err := h.Roster.SignUp(r.Context(), name, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: conf.Message})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	name, err := activityNameParam(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	email, err := emailQuery(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	conf, err := h.Roster.Unregister(r.Context(), name, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: conf.Message})
}
