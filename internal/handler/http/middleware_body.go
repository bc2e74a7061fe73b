package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-health-server/internal/utils"
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeForm = "application/x-www-form-urlencoded"
)

// withBodyParsing decodes JSON and URL-encoded request bodies up to
// maxBodyBytes and stores the result in the request context, where
// [utils.GetBodyFromContext] finds it. Other content types pass through
// untouched. The raw body stays readable for the handler.
func (h *Handler) withBodyParsing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || !(isJSONMediaType(mediaType) || mediaType == mediaTypeForm) {
			next.ServeHTTP(w, r)
			return
		}

		if charset, ok := params["charset"]; ok && !isUTF8(charset) {
			h.handleError(w, r, fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset))
			return
		}

		data, err := h.readBody(w, r)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(data))

		var body any
		if isJSONMediaType(mediaType) {
			body, err = decodeJSON(data)
		} else {
			body, err = decodeForm(data)
		}
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		if body != nil {
			r = r.WithContext(utils.ContextWithBody(r.Context(), body))
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if h.maxBodyBytes > 0 && r.ContentLength > h.maxBodyBytes {
		return nil, fmt.Errorf("%w: %d bytes declared, limit is %d", ErrBodyTooLarge, r.ContentLength, h.maxBodyBytes)
	}

	reader := r.Body
	if h.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		if errors.Is(err, ErrInvalidGzipBody) {
			return nil, err
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	return data, nil
}

// decodeJSON accepts a single JSON object or array. Numbers are kept as
// [json.Number]. An empty body decodes to nil.
func decodeJSON(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected object or array", ErrMalformedJSON)
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var body any
	if err := decoder.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	if decoder.InputOffset() != int64(len(trimmed)) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedJSON)
	}
	return body, nil
}

func decodeForm(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	form, err := parseForm(string(data))
	if err != nil {
		if errors.Is(err, ErrTooManyParameters) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedForm, err)
	}
	return form, nil
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == mediaTypeJSON || strings.HasSuffix(mediaType, "+json")
}

func isUTF8(charset string) bool {
	charset = strings.ToLower(charset)
	return charset == "utf-8" || charset == "utf8"
}
