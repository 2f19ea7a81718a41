package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobhub/internal/common"
)

type ErrorCollector interface {
	ObserveError(code string)
}

var collector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	collector = c
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	var coded *common.Error
	if !errors.As(err, &coded) {
		coded = common.NewError(common.CodeInternal, "internal error", err)
	}
	if collector != nil {
		collector.ObserveError(string(coded.Code))
	}
	JSON(w, statusFor(coded.Code), errorBody{Error: errorDetail{
		Code:    string(coded.Code),
		Message: coded.Message,
		Fields:  coded.Fields,
	}})
}

// EntityWithRepair writes the primary entity with a repair flag: the create
// or update succeeded, but a paired reference update still needs to be
// re-applied.
func EntityWithRepair(w http.ResponseWriter, status int, entity any, err error) {
	var coded *common.Error
	message := ""
	if errors.As(err, &coded) {
		message = coded.Message
	}
	if collector != nil {
		collector.ObserveError(string(common.CodeConflictRisk))
	}
	JSON(w, status, map[string]any{
		"data":          entity,
		"repair_needed": true,
		"reason":        message,
	})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeConflict, common.CodeConflictRisk:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
