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

package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/httpsig"
)

// SigningTransport is an http.RoundTripper that signs every outgoing
// request with cfg before handing it to next.
type SigningTransport struct {
	next   http.RoundTripper
	config httpsig.SignConfig
	log    zerolog.Logger
}

// NewSigningTransport wraps next (http.DefaultTransport if nil) so that
// every request is signed per cfg before being sent. cfg.Created is
// overwritten per request with the current time.
func NewSigningTransport(next http.RoundTripper, cfg httpsig.SignConfig) *SigningTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &SigningTransport{next: next, config: cfg, log: zerolog.Nop()}
}

// SetLogger attaches a zerolog logger the transport reports signing
// activity to. The zero value logs nothing.
func (t *SigningTransport) SetLogger(log zerolog.Logger) {
	t.log = log
}

// RoundTrip signs req and delegates to the wrapped transport.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cfg := t.config
	cfg.Created = time.Now()

	existing := httpsig.SignedMessage{
		SignatureInput: req.Header.Get("Signature-Input"),
		Signature:      req.Header.Get("Signature"),
	}

	msg := component.NewRequestMessage(req.Method, req.URL, req.Header)
	signed, err := httpsig.Sign(msg, cfg, existing)
	if err != nil {
		return nil, fmt.Errorf("sign outgoing request: %w", err)
	}
	req.Header.Set("Signature-Input", signed.SignatureInput)
	req.Header.Set("Signature", signed.Signature)

	t.log.Debug().Str("url", req.URL.String()).Str("label", cfg.Label).Msg("signed outgoing request")
	return t.next.RoundTrip(req)
}
