package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"go_5_vocab_cards/internal/model"

	"github.com/stretchr/testify/require"
)

// newRequest は JSON ボディ付きのリクエストを作る。userID が nil ならヘッダーなし。
func newRequest(t *testing.T, method, path string, body interface{}, userID *uint) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", strconv.FormatUint(uint64(*userID), 10))
	}
	return req
}

func uintPtr(v uint) *uint { return &v }

// decodeError はエラーレスポンスを読み取る
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}
