package requestlog

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev"
	"encore.dev/middleware"

	"encore.app/postal/reqctx"
)

func newRequest(headers http.Header) middleware.Request {
	return middleware.NewRequest(context.Background(), &encore.Request{
		Method:  "PATCH",
		Path:    "/v1/deliveries/RR123456789IL/status",
		Headers: headers,
	})
}

func TestCorrelationIDOf(t *testing.T) {
	assert.Equal(t, "corr-1", correlationIDOf(newRequest(http.Header{CorrelationHeader: []string{"corr-1"}})))

	generated := correlationIDOf(newRequest(http.Header{}))
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	assert.NotEmpty(t, correlationIDOf(newRequest(nil)))
}

func TestLogRequestPassesResponseThrough(t *testing.T) {
	testCases := []struct {
		name     string
		response middleware.Response
	}{
		{name: "success", response: middleware.Response{Payload: map[string]bool{"success": true}}},
		{name: "failure", response: middleware.Response{Err: errors.New("boom")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			next := func(req middleware.Request) middleware.Response {
				calls++
				return tc.response
			}

			resp := LogRequest(newRequest(http.Header{}), next)

			assert.Equal(t, 1, calls)
			assert.Equal(t, tc.response.Payload, resp.Payload)
			assert.Equal(t, tc.response.Err, resp.Err)
		})
	}
}

func TestLogRequestHandsCorrelationIDToHandler(t *testing.T) {
	testCases := []struct {
		name     string
		headers  http.Header
		expected string
	}{
		{name: "from_header", headers: http.Header{CorrelationHeader: []string{"corr-7"}}, expected: "corr-7"},
		{name: "generated", headers: http.Header{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen *string
			next := func(req middleware.Request) middleware.Response {
				seen = reqctx.CorrelationID(req.Context())
				return middleware.Response{}
			}

			LogRequest(newRequest(tc.headers), next)

			require.NotNil(t, seen)
			if tc.expected != "" {
				assert.Equal(t, tc.expected, *seen)
				return
			}
			_, err := uuid.Parse(*seen)
			assert.NoError(t, err)
		})
	}
}
