// Copyright (C) 2025 SAGE-X Project
//
// This file is part of httpsig.
//
// httpsig is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// httpsig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with httpsig.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/httpsig"
)

type contextKey string

const verifyResultsKey contextKey = "httpsig_verify_results"

// ErrorHandler handles verification errors.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// VerifyMiddleware provides HTTP middleware that verifies the httpbis
// Signature/Signature-Input headers on incoming requests.
type VerifyMiddleware struct {
	config       httpsig.VerifyConfig
	errorHandler ErrorHandler
	optional     bool
	log          zerolog.Logger
}

// NewVerifyMiddleware creates middleware that checks every request
// against cfg.
func NewVerifyMiddleware(cfg httpsig.VerifyConfig) *VerifyMiddleware {
	return &VerifyMiddleware{
		config:       cfg,
		errorHandler: defaultErrorHandler,
		log:          zerolog.Nop(),
	}
}

// SetErrorHandler sets a custom error handler.
func (m *VerifyMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional. If true,
// requests without Signature/Signature-Input headers are allowed to
// proceed unauthenticated.
func (m *VerifyMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetLogger attaches a zerolog logger the middleware reports
// verification outcomes to. The zero value logs nothing.
func (m *VerifyMiddleware) SetLogger(log zerolog.Logger) {
	m.log = log
}

// Wrap wraps an HTTP handler with httpbis signature verification.
func (m *VerifyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		signatureInput := r.Header.Get("Signature-Input")
		signature := r.Header.Get("Signature")
		if signatureInput == "" || signature == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing signature headers"))
			return
		}

		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		msg := component.NewRequestMessage(r.Method, r.URL, r.Header)
		results, err := httpsig.VerifyHTTPBIS(r.Context(), msg, signatureInput, signature, m.config)
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		if err != nil {
			m.log.Error().Err(err).Str("path", r.URL.Path).Msg("signature verification failed")
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}
		m.log.Debug().Int("signatures", len(results)).Str("path", r.URL.Path).Msg("signature verified")

		ctx := context.WithValue(r.Context(), verifyResultsKey, results)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyResultsFromContext extracts the signatures a VerifyMiddleware
// checked for this request.
func VerifyResultsFromContext(ctx context.Context) ([]httpsig.VerifyResult, bool) {
	results, ok := ctx.Value(verifyResultsKey).([]httpsig.VerifyResult)
	return results, ok
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
