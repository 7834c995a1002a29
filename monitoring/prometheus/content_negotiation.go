package prometheus

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/golang/gddo/httputil"
	jsoniter "github.com/json-iterator/go"
)

const (
	contentTypePlainText = "text/plain"
	contentTypeJSON      = "application/json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// generatedResponse is a container for response output.
type generatedResponse struct {
	// Err is protocol error, if any.
	Err string `json:"error"`

	// Data is response output, if any.
	Data interface{} `json:"data"`
}

// negotiateContentType parses "Accept:" header and returns preferred content type string.
func negotiateContentType(r *http.Request) string {
	contentTypes := []string{
		contentTypePlainText,
		contentTypeJSON,
	}
	return httputil.NegotiateContentType(r, contentTypes, contentTypePlainText)
}

// writeResponse writes plain text from a bytes.Buffer, or the whole response as JSON.
func writeResponse(w http.ResponseWriter, r *http.Request, code int, response generatedResponse, plain *bytes.Buffer) error {
	switch negotiateContentType(r) {
	case contentTypePlainText:
		if plain == nil {
			return fmt.Errorf("unexpected data: %v", response.Data)
		}
		w.Header().Set("Content-Type", contentTypePlainText)
		w.WriteHeader(code)
		if _, err := w.Write(plain.Bytes()); err != nil {
			return fmt.Errorf("could not write response body: %w", err)
		}
	case contentTypeJSON:
		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			return err
		}
	}
	return nil
}
