// Package purge exposes a webhook on the monitoring port that drops memoized results.
package purge

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Purger drops everything it holds.
type Purger interface {
	Purge()
	Len() int
}

// Handler for accepting requests to drop the result cache.
func Handler(p Purger) func(http.ResponseWriter, *http.Request) {
	log := logrus.WithField("prefix", "cache")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		dropped := p.Len()
		p.Purge()
		log.WithField("entries", dropped).Debug("Purged result cache from HTTP webhook")
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprintf(w, "OK, purged %d entries", dropped); err != nil {
			log.WithError(err).Error("Failed to write OK")
		}
	}
}
