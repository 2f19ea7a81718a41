package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobhub/internal/common"
)

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

// idFromPath extracts the path segment at index (0-based, counted from the
// first segment after the leading slash) and parses it as a UUID.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(segments) || segments[index] == "" {
		return "", common.NewValidationError("invalid path", map[string]string{"id": "id is required"})
	}
	return common.ParseUUID(segments[index])
}

func requireAdminKey(w http.ResponseWriter, r *http.Request, adminKey string) bool {
	key := strings.TrimSpace(adminKey)
	if key == "" {
		forbidden(w)
		return false
	}
	header := strings.TrimSpace(r.Header.Get("X-Admin-Key"))
	bearer := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == key || bearer == "Bearer "+key {
		return true
	}
	forbidden(w)
	return false
}

func forbidden(w http.ResponseWriter) {
	w.WriteHeader(http.StatusForbidden)
}
