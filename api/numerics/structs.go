package numerics

// Integers travel as decimal strings so clients never lose precision.

type IntegerSquareRootResponse struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

type ArrangeCoinsResponse struct {
	Coins string `json:"coins"`
	Rows  string `json:"rows"`
	Used  string `json:"used"`
}

type GuessNumberResponse struct {
	N           string `json:"n"`
	Result      string `json:"result"`
	OracleCalls string `json:"oracle_calls"`
	MaxCalls    string `json:"max_calls"`
}

type CreateGuessSessionRequest struct {
	N string `json:"n"`
}

// AnswerGuessSessionRequest carries the caller's verdict on the current candidate:
// -1 when the candidate is too high, 0 when correct and 1 when too low.
type AnswerGuessSessionRequest struct {
	Response int `json:"response"`
}

type GuessSessionResponse struct {
	Id        string `json:"id"`
	N         string `json:"n"`
	Candidate string `json:"candidate"`
	Low       string `json:"low"`
	High      string `json:"high"`
	Calls     string `json:"calls"`
	Found     bool   `json:"found"`
}
