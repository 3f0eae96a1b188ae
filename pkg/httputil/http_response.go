package httputil

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

const requestIDHeader = "X-Request-ID"

var ErrEmptyBody = errors.New("empty request body")

type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteErrorResponse echoes the request id set earlier on w, so clients can quote it.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:      statusCode,
		Message:   message,
		RequestID: w.Header().Get(requestIDHeader),
	}
	if details != nil {
		resp.Details = details.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSON reads one JSON object into dst. Unknown fields and bodies larger
// than MaxBodyBytes are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()
	dec := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
