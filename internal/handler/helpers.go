package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ryuk156/backend-AOL/internal/domain"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
	"github.com/ryuk156/backend-AOL/internal/logger"
	"github.com/ryuk156/backend-AOL/internal/utils"
)

// variantFromRequest resolves the {variant} URL segment to an account variant.
// An unknown segment means the route does not exist.
func variantFromRequest(r *http.Request) (domain.Variant, error) {
	variant := domain.Variant(chi.URLParam(r, "variant"))
	if !variant.Valid() {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Not found", StatusCode: http.StatusNotFound}
	}
	return variant, nil
}

// pathParam returns a URL parameter with percent-encoding undone. Emails show
// up encoded in confirmation links.
func pathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Invalid %s", name), StatusCode: http.StatusBadRequest}
	}
	return decoded, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// parseMultipartRegistration extracts the JSON payload from the "json" form
// field of a multipart registration request. The caller reads the uploaded
// file separately.
func parseMultipartRegistration[T any](r *http.Request, maxRequestSize int64) (body T, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestSize)
	if err = r.ParseMultipartForm(maxRequestSize); err != nil {
		err = &internal_errors.ErrorWithStatusCode{Message: "Request body too large or malformed", StatusCode: http.StatusRequestEntityTooLarge}
		return
	}

	jsonPayload := r.FormValue("json")
	if jsonPayload == "" {
		err = &internal_errors.ErrorWithStatusCode{Message: "Missing JSON payload in multipart form", StatusCode: http.StatusBadRequest}
		return
	}

	err = utils.DecodeValidate(io.NopCloser(strings.NewReader(jsonPayload)), &body)
	return
}
