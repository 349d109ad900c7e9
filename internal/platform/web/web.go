package web

import (
	"encoding/json"
	"net/http"

	"github.com/tmasupe/kitchenware-backend/internal/platform/apperr"
	"go.uber.org/zap"
)

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// RespondError renders an error according to the apperr taxonomy. 5xx causes
// are logged server-side and the client only sees the generic message.
func RespondError(w http.ResponseWriter, log *zap.Logger, err error) {
	appErr := apperr.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		log.Error(appErr.Message, zap.Error(appErr.Err))
	}
	Respond(w, appErr.Status, map[string]string{"error": appErr.Message})
}
