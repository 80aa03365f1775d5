package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/crestfin/admin-console/internal/api/metrics"
	"github.com/crestfin/admin-console/internal/core/domain"
)

// Fixed operator-facing messages. The 401 message deliberately never echoes
// the backend's own text.
const (
	msgSessionExpired = "Your session has expired. Please sign in again."
	msgNetworkError   = "Network error: Unable to connect to server"
	msgUnexpected     = "An unexpected error occurred"
	msgRequestFailed  = "API request failed"
	msgNotAvailable   = "This feature is not available yet"
)

// envelope is the wire-level wrapper the backend is expected to use. Success
// is a pointer so that its absence (legacy raw-payload responses) is
// distinguishable from an explicit false.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Do performs one call and normalizes its outcome. A 404 is a hard failure;
// use DoOptional for endpoints known to be optionally unimplemented.
func Do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) domain.Result[T] {
	ex := c.do(ctx, method, path, query, body)
	var zero T
	return finish(c, path, normalize(ex, false, zero))
}

// DoOptional behaves like Do except that a 404 response is treated as a soft
// success carrying the given empty value. The softness is decided per call
// site: only endpoints the backend is known to not yet implement qualify.
func DoOptional[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, empty T) domain.Result[T] {
	ex := c.do(ctx, method, path, query, body)
	return finish(c, path, normalize(ex, true, empty))
}

func finish[T any](c *Client, path string, res domain.Result[T]) domain.Result[T] {
	outcome := "success"
	if !res.Success {
		outcome = string(res.Err.Class)
		c.log.Debug().Str("resource", c.resource).Str("path", path).
			Str("class", string(res.Err.Class)).Str("message", res.Err.Message).
			Msg("request failed")
	}
	metrics.ClientRequestsTotal.WithLabelValues(c.resource, outcome).Inc()
	return res
}

// normalize converts a raw exchange into the uniform result shape. Exactly
// one of the success/error branches is populated, always.
func normalize[T any](ex exchange, soft404 bool, empty T) domain.Result[T] {
	switch {
	case ex.buildErr != nil:
		msg := ex.buildErr.Error()
		if msg == "" {
			msg = msgUnexpected
		}
		return domain.Fail[T](domain.ClassUnknown, msg, 0)

	case ex.netErr != nil:
		return domain.Fail[T](domain.ClassNetworkError, msgNetworkError, 0)

	case ex.status == http.StatusUnauthorized:
		return domain.Fail[T](domain.ClassUnauthorized, msgSessionExpired, ex.status)

	case ex.status == http.StatusNotFound && soft404:
		return domain.Ok(empty, msgNotAvailable)

	case ex.status >= 200 && ex.status < 300:
		return decodeSuccess[T](ex.body)

	default:
		return domain.Fail[T](classify(ex.status), failureMessage(ex.body, ex.status), ex.status)
	}
}

// decodeSuccess unwraps a 2xx body. Two envelope conventions coexist in the
// backend: the standard `{success, data, message}` wrapper, and legacy
// endpoints that return the payload directly as the body. When the body is a
// JSON object containing a `data` key the payload is taken from there;
// otherwise the entire body is the payload.
func decodeSuccess[T any](body []byte) domain.Result[T] {
	var data T

	if len(body) == 0 {
		return domain.Ok(data, "")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		// Not an object (array, scalar): the body is the payload itself.
		if err := json.Unmarshal(body, &data); err != nil {
			return domain.Fail[T](domain.ClassUnknown, msgUnexpected, 0)
		}
		return domain.Ok(data, "")
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Fail[T](domain.ClassUnknown, msgUnexpected, 0)
	}

	if env.Success != nil && !*env.Success {
		return domain.Fail[T](domain.ClassUnknown, failureMessageFromEnvelope(env), 0)
	}

	payload := body
	if raw, hasData := probe["data"]; hasData {
		payload = raw
	}
	if string(payload) != "null" {
		if err := json.Unmarshal(payload, &data); err != nil {
			return domain.Fail[T](domain.ClassUnknown, msgUnexpected, 0)
		}
	}
	return domain.Ok(data, env.Message)
}

// classify maps an HTTP error status to its classification. 401 is handled
// before this point; everything that is not 403/404 counts as a server error.
func classify(status int) domain.Classification {
	switch status {
	case http.StatusForbidden:
		return domain.ClassForbidden
	case http.StatusNotFound:
		return domain.ClassNotFound
	default:
		return domain.ClassServerError
	}
}

// failureMessage extracts the most specific message from an error response
// body: error.message, then message, then a generic status string.
func failureMessage(body []byte, status int) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if msg := failureMessageFromEnvelope(env); msg != msgRequestFailed {
			return msg
		}
	}
	return fmt.Sprintf("Server error: %d", status)
}

func failureMessageFromEnvelope(env envelope) string {
	if env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}
	if env.Message != "" {
		return env.Message
	}
	return msgRequestFailed
}
