package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"activities-service/internal/service"
)

// activityNameParam достаёт название кружка из пути.
// chi отдаёт сырой сегмент только когда задан RawPath, иначе параметр уже декодирован.
func activityNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "activityName")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return "", service.ErrBadRequest("activity name is malformed")
		}
		name = decoded
	}
	if name == "" {
		return "", service.ErrBadRequest("activity name is required")
	}
	return name, nil
}

// emailQuery достаёт обязательный query-параметр email. Формат не проверяется.
func emailQuery(r *http.Request) (string, error) {
	email := r.URL.Query().Get("email")
	if email == "" {
		return "", service.ErrBadRequest("email is required")
	}
	return email, nil
}
