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
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/sage-x-project/httpsig/pkg/httpsig"
)

const (
	AlgRSAPSSSHA512  = "rsa-pss-sha512"
	AlgRSAV1_5SHA256 = "rsa-v1_5-sha256"
)

type rsaPSSKey struct {
	keyID string
	priv  *rsa.PrivateKey
	pub   *rsa.PublicKey
}

func (k *rsaPSSKey) Algorithm() string { return AlgRSAPSSSHA512 }
func (k *rsaPSSKey) KeyID() string     { return k.keyID }

func (k *rsaPSSKey) Sign(data []byte) ([]byte, error) {
	digest := sha512.Sum512(data)
	return rsa.SignPSS(rand.Reader, k.priv, crypto.SHA512, digest[:], &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash})
}

func (k *rsaPSSKey) Verify(data, signature []byte) error {
	digest := sha512.Sum512(data)
	if err := rsa.VerifyPSS(k.pub, crypto.SHA512, digest[:], signature, &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash}); err != nil {
		return fmt.Errorf("%w: %v", httpsig.ErrVerificationFailed, err)
	}
	return nil
}

// NewRSAPSSSigningKey wraps priv as a SigningKey for "rsa-pss-sha512".
func NewRSAPSSSigningKey(keyID string, priv *rsa.PrivateKey) httpsig.SigningKey {
	return &rsaPSSKey{keyID: keyID, priv: priv}
}

// NewRSAPSSVerifyingKey wraps pub as a VerifyingKey for "rsa-pss-sha512".
func NewRSAPSSVerifyingKey(pub *rsa.PublicKey) httpsig.VerifyingKey {
	return &rsaPSSKey{pub: pub}
}

type rsaPKCS1Key struct {
	keyID string
	priv  *rsa.PrivateKey
	pub   *rsa.PublicKey
}

func (k *rsaPKCS1Key) Algorithm() string { return AlgRSAV1_5SHA256 }
func (k *rsaPKCS1Key) KeyID() string     { return k.keyID }

func (k *rsaPKCS1Key) Sign(data []byte) ([]byte, error) {
	digest := sha256.Sum256(data)
	return rsa.SignPKCS1v15(rand.Reader, k.priv, crypto.SHA256, digest[:])
}

func (k *rsaPKCS1Key) Verify(data, signature []byte) error {
	digest := sha256.Sum256(data)
	if err := rsa.VerifyPKCS1v15(k.pub, crypto.SHA256, digest[:], signature); err != nil {
		return fmt.Errorf("%w: %v", httpsig.ErrVerificationFailed, err)
	}
	return nil
}

// NewRSAPKCS1SigningKey wraps priv as a SigningKey for "rsa-v1_5-sha256".
func NewRSAPKCS1SigningKey(keyID string, priv *rsa.PrivateKey) httpsig.SigningKey {
	return &rsaPKCS1Key{keyID: keyID, priv: priv}
}

// NewRSAPKCS1VerifyingKey wraps pub as a VerifyingKey for "rsa-v1_5-sha256".
func NewRSAPKCS1VerifyingKey(pub *rsa.PublicKey) httpsig.VerifyingKey {
	return &rsaPKCS1Key{pub: pub}
}
