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

// Package transport provides an http.RoundTripper that signs outgoing
// requests with an httpbis HTTP Message Signature (RFC 9421).
//
// # Key Features
//
//   - Drop-in http.RoundTripper, composable with any http.Client
//   - Automatic Signature/Signature-Input headers on every request
//   - Created timestamp stamped per request for replay resistance
//
// # Usage
//
//	client := &http.Client{
//	    Transport: transport.NewSigningTransport(http.DefaultTransport, httpsig.SignConfig{
//	        Label:      "sig1",
//	        Components: []component.Identifier{component.NewIdentifier("@method"), component.NewIdentifier("@authority"), component.NewIdentifier("@path")},
//	        Key:        signingKey,
//	    }),
//	}
//	resp, err := client.Get("https://example.com/resource")
//
// # Architecture
//
// SigningTransport sits between the caller's http.Client and the
// underlying network round tripper:
//
//	http.Client
//	    └─→ SigningTransport
//	        └─→ pkg/httpsig.Sign
//	            └─→ next http.RoundTripper (network)
//
// It never computes body digests and never stores key material itself
// — callers supply an httpsig.SigningKey, typically backed by
// pkg/cryptoutil or an external KMS.
package transport
