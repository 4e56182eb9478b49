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

package cryptoutil

import (
	"crypto/hmac"
	"crypto/sha256"

	"github.com/sage-x-project/httpsig/pkg/httpsig"
)

const AlgHMACSHA256 = "hmac-sha256"

// hmacKey is both a SigningKey and a VerifyingKey: HMAC is symmetric,
// so the same secret plays both roles.
type hmacKey struct {
	keyID  string
	secret []byte
}

func (k *hmacKey) Algorithm() string { return AlgHMACSHA256 }
func (k *hmacKey) KeyID() string     { return k.keyID }

func (k *hmacKey) Sign(data []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, k.secret)
	mac.Write(data)
	return mac.Sum(nil), nil
}

func (k *hmacKey) Verify(data, signature []byte) error {
	mac := hmac.New(sha256.New, k.secret)
	mac.Write(data)
	expected := mac.Sum(nil)
	if !hmac.Equal(expected, signature) {
		return httpsig.ErrVerificationFailed
	}
	return nil
}

// NewHMACSHA256SigningKey wraps secret as a SigningKey for "hmac-sha256".
func NewHMACSHA256SigningKey(keyID string, secret []byte) httpsig.SigningKey {
	return &hmacKey{keyID: keyID, secret: secret}
}

// NewHMACSHA256VerifyingKey wraps secret as a VerifyingKey for
// "hmac-sha256". Since HMAC is symmetric, this is the same secret used
// to sign.
func NewHMACSHA256VerifyingKey(secret []byte) httpsig.VerifyingKey {
	return &hmacKey{secret: secret}
}
