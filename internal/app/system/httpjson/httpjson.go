// Package httpjson holds the JSON request/response plumbing shared by
// every feature: the success/error envelopes, body decoding with a size
// cap, and the error-to-envelope mapping driven by the apperr taxonomy.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies. The API only carries small JSON
// documents; anything larger is malformed input.
const maxBodyBytes = 1 << 20

// debug controls whether underlying error detail is echoed in the
// "message" field. Off by default; enabled from config at startup.
var debug atomic.Bool

// SetDebug toggles debug detail in error envelopes.
func SetDebug(on bool) { debug.Store(on) }

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with a 200 status.
func OK(w http.ResponseWriter, v any) { Respond(w, http.StatusOK, v) }

// Created writes v with a 201 status.
func Created(w http.ResponseWriter, v any) { Respond(w, http.StatusCreated, v) }

// Decode reads the request body into dst. Unknown fields are ignored:
// clients may legitimately send fields the server stamps itself (such
// as ownership fields), and those must be dropped, not rejected.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.KindValidation, "request body is required")
		}
		return apperr.Wrap(apperr.KindValidation, "malformed JSON body", err)
	}
	return nil
}

// Error maps err through the apperr taxonomy and writes the standard
// error envelope. Internal errors are logged; their detail stays out of
// the response unless debug mode is on.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	ae := apperr.From(err)
	if ae.Kind == apperr.KindInternal && log != nil {
		log.Error("request failed", zap.Error(err))
	}
	body := errorBody{Error: ae.Kind.Code(), Message: ae.Msg}
	if debug.Load() && ae.Err != nil {
		body.Message = ae.Msg + ": " + ae.Err.Error()
	}
	Respond(w, ae.Kind.HTTPStatus(), body)
}

// NotFound is the router-level handler for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Respond(w, http.StatusNotFound, errorBody{Error: "not_found", Message: "route not found"})
}

// MethodNotAllowed is the router-level handler for known routes hit
// with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Respond(w, http.StatusMethodNotAllowed, errorBody{Error: "method_not_allowed", Message: "method not allowed"})
}
