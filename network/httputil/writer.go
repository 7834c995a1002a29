// Package httputil holds the JSON plumbing shared by the HTTP handlers.
package httputil

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// JsonMediaType is the content type of every response body.
const JsonMediaType = "application/json"

var (
	log  = logrus.WithField("prefix", "httputil")
	json = jsoniter.ConfigCompatibleWithStandardLibrary
)

// WriteJson writes the response message in JSON format.
func WriteJson(w http.ResponseWriter, v interface{}) {
	WriteJsonWithCode(w, http.StatusOK, v)
}

// WriteJsonWithCode writes the response message in JSON format with the given status code.
func WriteJsonWithCode(w http.ResponseWriter, code int, v interface{}) {
	j, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("Could not marshal response message")
		HandleError(w, "Could not marshal response message", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(j)))
	w.Header().Set("Content-Type", JsonMediaType)
	w.WriteHeader(code)
	if _, err := w.Write(j); err != nil {
		log.WithError(err).Error("Could not write response message")
	}
}

// WriteError writes the error by manipulating headers and the body of the final response.
func WriteError(w http.ResponseWriter, errJson HasStatusCode) {
	j, err := json.Marshal(errJson)
	if err != nil {
		log.WithError(err).Error("Could not marshal error message")
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(j)))
	w.Header().Set("Content-Type", JsonMediaType)
	w.WriteHeader(errJson.StatusCode())
	if _, err := w.Write(j); err != nil {
		log.WithError(err).Error("Could not write error message")
	}
}
