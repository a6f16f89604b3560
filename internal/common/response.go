package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/web3ngineer/UTube/internal/logging"
)

type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type APIError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	writeBody(w, statusCode, APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	})
}

// WriteError renders err as an error envelope. Internal failures are logged
// with their cause and reach the client only as a generic message.
func WriteError(w http.ResponseWriter, logger *logging.Logger, err error) {
	code := Code(err)
	statusCode := HTTPStatus(code)

	body := APIError{
		StatusCode: statusCode,
		Message:    publicMessage(err),
		Success:    false,
		Errors:     []string{},
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		body.Errors = append(body.Errors, ve.Fields...)
	}

	if code == codes.Internal && logger != nil {
		logger.ErrorWithErr("request failed", err)
	}

	writeBody(w, statusCode, body)
}

func writeBody(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
