package numerics

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/math"
	"github.com/prysmaticlabs/numerics/network/httputil"
	"go.opencensus.io/trace"
)

// IntegerSquareRoot returns floor(sqrt(x)) for the path value x.
func (s *Server) IntegerSquareRoot(w http.ResponseWriter, r *http.Request) {
	_, span := trace.StartSpan(r.Context(), "numerics.IntegerSquareRoot")
	defer span.End()

	x, ok := httputil.ParseInt64(w, "x", mux.Vars(r)["x"])
	if !ok {
		return
	}
	span.AddAttributes(trace.Int64Attribute("x", x))
	root, err := s.compute(math.OpIntegerSquareRoot, x, math.IntegerSquareRoot)
	if err != nil {
		handleComputeError(w, math.OpIntegerSquareRoot, err)
		return
	}
	httputil.WriteJson(w, &IntegerSquareRootResponse{
		Input:  formatInt(x),
		Result: formatInt(root),
	})
}

// ArrangeCoins returns the number of complete staircase rows n coins can build.
func (s *Server) ArrangeCoins(w http.ResponseWriter, r *http.Request) {
	_, span := trace.StartSpan(r.Context(), "numerics.ArrangeCoins")
	defer span.End()

	n, ok := httputil.ParseInt64(w, "n", mux.Vars(r)["n"])
	if !ok {
		return
	}
	span.AddAttributes(trace.Int64Attribute("n", n))
	rows, err := s.compute(math.OpArrangeCoins, n, math.ArrangeCoins)
	if err != nil {
		handleComputeError(w, math.OpArrangeCoins, err)
		return
	}
	httputil.WriteJson(w, &ArrangeCoinsResponse{
		Coins: formatInt(n),
		Rows:  formatInt(rows),
		Used:  formatInt(math.StaircaseCoins(rows)),
	})
}

// GuessNumber searches [1, n] for secret with a server side oracle and
// reports how many oracle calls it took.
func (s *Server) GuessNumber(w http.ResponseWriter, r *http.Request) {
	_, span := trace.StartSpan(r.Context(), "numerics.GuessNumber")
	defer span.End()

	query := r.URL.Query()
	n, ok := httputil.ParseInt64(w, "n", query.Get("n"))
	if !ok {
		return
	}
	secret, ok := httputil.ParseInt64(w, "secret", query.Get("secret"))
	if !ok {
		return
	}
	if n >= 1 && (secret < 1 || secret > n) {
		httputil.HandleError(w, "secret must be within [1, n]", http.StatusBadRequest)
		return
	}

	calls := 0
	oracle := math.SecretOracle(secret)
	counting := math.OracleFunc(func(candidate int64) int {
		calls++
		return oracle.Guess(candidate)
	})
	result, err := math.GuessNumber(n, counting)
	if err != nil {
		handleComputeError(w, math.OpGuessNumber, err)
		return
	}
	computationsTotal.WithLabelValues(string(math.OpGuessNumber), "ok").Inc()
	oracleCallsHistogram.Observe(float64(calls))
	httputil.WriteJson(w, &GuessNumberResponse{
		N:           formatInt(n),
		Result:      formatInt(result),
		OracleCalls: strconv.Itoa(calls),
		MaxCalls:    strconv.Itoa(math.MaxOracleCalls(n)),
	})
}

// CreateGuessSession starts an interactive search where the caller plays the oracle.
func (s *Server) CreateGuessSession(w http.ResponseWriter, r *http.Request) {
	_, span := trace.StartSpan(r.Context(), "numerics.CreateGuessSession")
	defer span.End()

	var req CreateGuessSessionRequest
	if !httputil.DecodeJsonBody(w, r, &req) {
		return
	}
	n, ok := httputil.ParseInt64(w, "n", req.N)
	if !ok {
		return
	}
	sess, err := s.Sessions.Create(n)
	if err != nil {
		handleComputeError(w, math.OpGuessNumber, err)
		return
	}
	log.WithField("id", sess.Id).WithField("n", n).Debug("Created guess session")
	httputil.WriteJsonWithCode(w, http.StatusCreated, sess.response())
}

// GetGuessSession returns the current state of a session.
func (s *Server) GetGuessSession(w http.ResponseWriter, r *http.Request) {
	_, span := trace.StartSpan(r.Context(), "numerics.GetGuessSession")
	defer span.End()

	sess, err := s.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		httputil.HandleError(w, err.Error(), http.StatusNotFound)
		return
	}
	httputil.WriteJson(w, sess.response())
}

// AnswerGuessSession records the caller's verdict on the current candidate
// and returns the next one.
func (s *Server) AnswerGuessSession(w http.ResponseWriter, r *http.Request) {
	_, span := trace.StartSpan(r.Context(), "numerics.AnswerGuessSession")
	defer span.End()

	sess, err := s.Sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		httputil.HandleError(w, err.Error(), http.StatusNotFound)
		return
	}
	var req AnswerGuessSessionRequest
	if !httputil.DecodeJsonBody(w, r, &req) {
		return
	}
	found, err := sess.Answer(req.Response)
	if err != nil {
		handleComputeError(w, math.OpGuessNumber, err)
		return
	}
	resp := sess.response()
	if found {
		computationsTotal.WithLabelValues(string(math.OpGuessNumber), "ok").Inc()
		calls, err := strconv.ParseFloat(resp.Calls, 64)
		if err == nil {
			oracleCallsHistogram.Observe(calls)
		}
		log.WithField("id", sess.Id).WithField("result", resp.Candidate).Debug("Guess session found its number")
	}
	httputil.WriteJson(w, resp)
}

// DeleteGuessSession abandons a session.
func (s *Server) DeleteGuessSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := s.Sessions.Get(id); err != nil {
		httputil.HandleError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.Sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) compute(op math.Operation, input int64, fn func(int64) (int64, error)) (int64, error) {
	// Cached entries may predate a lowered MAX_INPUT.
	if err := math.CheckInput(input); err != nil {
		return 0, err
	}
	var (
		v   int64
		err error
	)
	if s.Results != nil {
		v, err = s.Results.GetOrCompute(op, input, fn)
	} else {
		v, err = fn(input)
	}
	if err == nil {
		computationsTotal.WithLabelValues(string(op), "ok").Inc()
	}
	return v, err
}

// handleComputeError maps routine errors onto HTTP statuses.
func handleComputeError(w http.ResponseWriter, op math.Operation, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, math.ErrNegativeInput),
		errors.Is(err, math.ErrInputTooLarge),
		errors.Is(err, math.ErrEmptyRange),
		errors.Is(err, math.ErrInvalidOracleResponse):
		code = http.StatusBadRequest
	case errors.Is(err, math.ErrInconsistentOracle),
		errors.Is(err, math.ErrSearchComplete):
		code = http.StatusConflict
	case errors.Is(err, ErrSessionNotFound):
		code = http.StatusNotFound
	}
	outcome := "invalid"
	if code == http.StatusInternalServerError {
		outcome = "failed"
		log.WithError(err).WithField("operation", op).Error("Computation failed")
	}
	computationsTotal.WithLabelValues(string(op), outcome).Inc()
	httputil.HandleError(w, err.Error(), code)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
