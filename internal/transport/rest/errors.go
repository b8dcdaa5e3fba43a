package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Kind   string       `json:"kind"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// statusFor maps an error kind to the HTTP status returned for it.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorKindNotFound:
		return http.StatusNotFound
	case domain.ErrorKindAlreadyExists:
		return http.StatusConflict
	case domain.ErrorKindValidation:
		return http.StatusBadRequest
	case domain.ErrorKindConfiguration:
		return http.StatusServiceUnavailable
	case domain.ErrorKindBackend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleError renders err as a JSON error body. Internal details are logged,
// not returned.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)
	resp := errorResponse{Error: err.Error(), Kind: string(kind)}

	switch kind {
	case domain.ErrorKindValidation:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Error = "validation failed"
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
	case domain.ErrorKindNotFound, domain.ErrorKindAlreadyExists:
	case domain.ErrorKindConfiguration:
		log.WarnContext(r.Context(), "store not configured", slog.String("error", err.Error()))
		resp.Error = "store not configured"
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("kind", string(kind)),
		)
		resp.Error = http.StatusText(status)
	}

	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message, Kind: string(domain.ErrorKindValidation)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a single JSON object from the request body, rejecting
// unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

const maxBodyBytes = 1 << 20
