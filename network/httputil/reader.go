package httputil

import (
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

// maxBodySize caps request bodies; every request body here is a handful of fields.
const maxBodySize = 1 << 16

// DecodeJsonBody decodes the request body into v, writing a 400 on failure.
// It returns false when the handler should stop.
func DecodeJsonBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil || r.Body == http.NoBody {
		HandleError(w, "No data submitted", http.StatusBadRequest)
		return false
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		HandleError(w, "Could not read request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		HandleError(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// ParseInt64 parses a decimal request value named name, writing a 400 on failure.
// It returns false when the handler should stop.
func ParseInt64(w http.ResponseWriter, name, raw string) (int64, bool) {
	if raw == "" {
		HandleError(w, name+" is required", http.StatusBadRequest)
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		HandleError(w, errors.Wrapf(err, "invalid %s", name).Error(), http.StatusBadRequest)
		return 0, false
	}
	return v, true
}
