package httputil

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prysmaticlabs/numerics/testing/assert"
	"github.com/prysmaticlabs/numerics/testing/require"
)

func TestWriteJson(t *testing.T) {
	writer := httptest.NewRecorder()
	WriteJson(writer, map[string]string{"result": "2"})
	require.Equal(t, http.StatusOK, writer.Code)
	require.Equal(t, JsonMediaType, writer.Header().Get("Content-Type"))
	assert.Equal(t, `{"result":"2"}`, writer.Body.String())
	assert.Equal(t, fmt.Sprintf("%d", writer.Body.Len()), writer.Header().Get("Content-Length"))
}

func TestHandleError(t *testing.T) {
	writer := httptest.NewRecorder()
	HandleError(writer, "input is negative", http.StatusBadRequest)
	require.Equal(t, http.StatusBadRequest, writer.Code)
	assert.Equal(t, `{"message":"input is negative","code":400}`, writer.Body.String())
}

func TestDecodeJsonBody(t *testing.T) {
	var body struct {
		N string `json:"n"`
	}
	writer := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"n":"100"}`))
	require.Equal(t, true, DecodeJsonBody(writer, req, &body))
	assert.Equal(t, "100", body.N)

	writer = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"n":`))
	require.Equal(t, false, DecodeJsonBody(writer, req, &body))
	assert.Equal(t, http.StatusBadRequest, writer.Code)
	assert.StringContains(t, "Could not decode request body", writer.Body.String())

	writer = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	require.Equal(t, false, DecodeJsonBody(writer, req, &body))
	assert.StringContains(t, "No data submitted", writer.Body.String())
}

func TestParseInt64(t *testing.T) {
	writer := httptest.NewRecorder()
	v, ok := ParseInt64(writer, "x", "46340")
	require.Equal(t, true, ok)
	assert.Equal(t, int64(46340), v)

	writer = httptest.NewRecorder()
	_, ok = ParseInt64(writer, "x", "abc")
	require.Equal(t, false, ok)
	assert.StringContains(t, "invalid x", writer.Body.String())

	writer = httptest.NewRecorder()
	_, ok = ParseInt64(writer, "x", "")
	require.Equal(t, false, ok)
	assert.StringContains(t, "x is required", writer.Body.String())
}
