package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/nestling/pkg/httputil"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.Header().Set("X-Request-ID", "req-1")

	httputil.WriteErrorResponse(rr, http.StatusConflict, "conflict", errors.New("item already purchased"))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{
		Code:      http.StatusConflict,
		Message:   "conflict",
		Details:   "item already purchased",
		RequestID: "req-1",
	}, resp)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Progress int `json:"progress"`
	}
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "valid", body: `{"progress":3}`, want: 3},
		{name: "unknown field", body: `{"progress":3,"extra":true}`, wantErr: true},
		{name: "malformed", body: `{"progress":`, wantErr: true},
		{name: "too large", body: `{"progress":1,"pad":"` + strings.Repeat("x", httputil.MaxBodyBytes) + `"}`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var p payload
			err := httputil.DecodeJSON(httptest.NewRecorder(), r, &p)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Progress)
		})
	}

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		var p payload
		assert.ErrorIs(t, httputil.DecodeJSON(httptest.NewRecorder(), r, &p), httputil.ErrEmptyBody)
	})
}
