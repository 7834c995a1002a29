// Package numerics serves the integer square root, coin staircase and
// number guessing routines over HTTP.
package numerics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prysmaticlabs/numerics/cache"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "numerics-api")

// Server defines a server implementation of the numerics HTTP API.
type Server struct {
	Results  *cache.ResultCache
	Sessions *SessionStore
}

// RegisterRoutes attaches every numerics endpoint to router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/numerics/v1").Subrouter()
	api.HandleFunc("/sqrt/{x}", s.IntegerSquareRoot).Methods(http.MethodGet)
	api.HandleFunc("/coins/{n}", s.ArrangeCoins).Methods(http.MethodGet)
	api.HandleFunc("/guess", s.GuessNumber).Methods(http.MethodGet)
	api.HandleFunc("/guess/sessions", s.CreateGuessSession).Methods(http.MethodPost)
	api.HandleFunc("/guess/sessions/{id}", s.GetGuessSession).Methods(http.MethodGet)
	api.HandleFunc("/guess/sessions/{id}", s.AnswerGuessSession).Methods(http.MethodPost)
	api.HandleFunc("/guess/sessions/{id}", s.DeleteGuessSession).Methods(http.MethodDelete)
}
