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
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"math/big"

	"github.com/sage-x-project/httpsig/pkg/httpsig"
)

const (
	AlgECDSAP256SHA256 = "ecdsa-p256-sha256"
	AlgECDSAP384SHA384 = "ecdsa-p384-sha384"
)

type ecdsaKey struct {
	alg        string
	keyID      string
	priv       *ecdsa.PrivateKey
	pub        *ecdsa.PublicKey
	hf         func() hash.Hash
	keyBitSize int
}

func (k *ecdsaKey) Algorithm() string { return k.alg }
func (k *ecdsaKey) KeyID() string     { return k.keyID }

// Sign hashes data and returns a fixed-width IEEE P1363 signature
// (r fixed-width || s fixed-width), never ASN.1 DER.
func (k *ecdsaKey) Sign(data []byte) ([]byte, error) {
	h := k.hf()
	h.Write(data)
	digest := h.Sum(nil)
	r, s, err := ecdsa.Sign(rand.Reader, k.priv, digest)
	if err != nil {
		return nil, err
	}
	return encodeP1363(r, s, k.keyBitSize), nil
}

func (k *ecdsaKey) Verify(data, signature []byte) error {
	n := fixedWidth(k.keyBitSize)
	if len(signature) != 2*n {
		return fmt.Errorf("%w: expected %d-byte P1363 signature, got %d", httpsig.ErrVerificationFailed, 2*n, len(signature))
	}
	r := new(big.Int).SetBytes(signature[:n])
	s := new(big.Int).SetBytes(signature[n:])

	h := k.hf()
	h.Write(data)
	digest := h.Sum(nil)

	if !ecdsa.Verify(k.pub, digest, r, s) {
		return httpsig.ErrVerificationFailed
	}
	return nil
}

func fixedWidth(keyBitSize int) int {
	n := keyBitSize / 8
	if keyBitSize%8 > 0 {
		n++
	}
	return n
}

func encodeP1363(r, s *big.Int, keyBitSize int) []byte {
	n := fixedWidth(keyBitSize)
	out := make([]byte, 2*n)
	rBytes := r.Bytes()
	copy(out[n-len(rBytes):n], rBytes)
	sBytes := s.Bytes()
	copy(out[2*n-len(sBytes):], sBytes)
	return out
}

// NewECDSAP256SigningKey wraps priv, which must use elliptic.P256, as a
// SigningKey for "ecdsa-p256-sha256".
func NewECDSAP256SigningKey(keyID string, priv *ecdsa.PrivateKey) (httpsig.SigningKey, error) {
	if priv.Curve.Params().BitSize != 256 {
		return nil, fmt.Errorf("cryptoutil: ecdsa-p256-sha256 requires a P-256 key")
	}
	return &ecdsaKey{alg: AlgECDSAP256SHA256, keyID: keyID, priv: priv, hf: sha256.New, keyBitSize: 256}, nil
}

// NewECDSAP256VerifyingKey wraps pub, which must use elliptic.P256, as
// a VerifyingKey for "ecdsa-p256-sha256".
func NewECDSAP256VerifyingKey(pub *ecdsa.PublicKey) (httpsig.VerifyingKey, error) {
	if pub.Params().BitSize != 256 {
		return nil, fmt.Errorf("cryptoutil: ecdsa-p256-sha256 requires a P-256 key")
	}
	return &ecdsaKey{alg: AlgECDSAP256SHA256, pub: pub, hf: sha256.New, keyBitSize: 256}, nil
}

// NewECDSAP384SigningKey wraps priv, which must use elliptic.P384, as a
// SigningKey for "ecdsa-p384-sha384".
func NewECDSAP384SigningKey(keyID string, priv *ecdsa.PrivateKey) (httpsig.SigningKey, error) {
	if priv.Curve.Params().BitSize != 384 {
		return nil, fmt.Errorf("cryptoutil: ecdsa-p384-sha384 requires a P-384 key")
	}
	return &ecdsaKey{alg: AlgECDSAP384SHA384, keyID: keyID, priv: priv, hf: sha512.New384, keyBitSize: 384}, nil
}

// NewECDSAP384VerifyingKey wraps pub, which must use elliptic.P384, as
// a VerifyingKey for "ecdsa-p384-sha384".
func NewECDSAP384VerifyingKey(pub *ecdsa.PublicKey) (httpsig.VerifyingKey, error) {
	if pub.Params().BitSize != 384 {
		return nil, fmt.Errorf("cryptoutil: ecdsa-p384-sha384 requires a P-384 key")
	}
	return &ecdsaKey{alg: AlgECDSAP384SHA384, pub: pub, hf: sha512.New384, keyBitSize: 384}, nil
}
