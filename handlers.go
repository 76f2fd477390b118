package strata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// =============================================================================
// API Request Body Handling
// =============================================================================

// shouldReadAPIRequestBody reports whether the request plausibly carries
// a body worth reading.
func shouldReadAPIRequestBody(r *http.Request) bool {
	if r == nil || r.Body == nil {
		return false
	}
	if r.ContentLength > 0 {
		return true
	}
	if r.Header.Get("Transfer-Encoding") != "" {
		return true
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// readAPIRequestBody reads the request body with a size limit.
func readAPIRequestBody(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, error) {
	if r == nil || r.Body == nil {
		return nil, nil
	}
	if maxBytes <= 0 {
		maxBytes = DefaultAPIConfig().MaxBodyBytes
	}

	limited := http.MaxBytesReader(w, r.Body, maxBytes)
	raw, err := io.ReadAll(limited)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &HTTPError{
				Code:    http.StatusRequestEntityTooLarge,
				Message: "request body too large",
				Err:     err,
			}
		}
		return nil, &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
			Err:     err,
		}
	}

	// Restore body for downstream consumers reading ctx.Request().Body.
	r.Body = io.NopCloser(bytes.NewReader(raw))
	return raw, nil
}

// decodeAPIBody decodes a JSON object body. An empty body yields a nil
// map; a non-JSON Content-Type or malformed JSON yields an HTTPError.
func decodeAPIBody(raw []byte, contentType string, requireJSON bool) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	if contentType == "" {
		if requireJSON {
			return nil, &HTTPError{
				Code:    http.StatusUnsupportedMediaType,
				Message: "Content-Type must be JSON",
			}
		}
	} else if !isJSONContentType(contentType) {
		return nil, &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: fmt.Sprintf("unsupported Content-Type %q", contentType),
		}
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, BadRequest(fmt.Errorf("malformed JSON body: %w", err))
	}
	return body, nil
}

// isJSONContentType reports whether the Content-Type denotes JSON
// (application/json or application/*+json).
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}
