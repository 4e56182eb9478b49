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
	"crypto/ed25519"
	"fmt"

	"github.com/sage-x-project/httpsig/pkg/httpsig"
)

const AlgEd25519 = "ed25519"

type ed25519Key struct {
	keyID string
	priv  ed25519.PrivateKey
	pub   ed25519.PublicKey
}

func (k *ed25519Key) Algorithm() string { return AlgEd25519 }
func (k *ed25519Key) KeyID() string     { return k.keyID }

func (k *ed25519Key) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(k.priv, data), nil
}

func (k *ed25519Key) Verify(data, signature []byte) error {
	if !ed25519.Verify(k.pub, data, signature) {
		return fmt.Errorf("%w: ed25519 signature did not verify", httpsig.ErrVerificationFailed)
	}
	return nil
}

// NewEd25519SigningKey wraps priv as a SigningKey for "ed25519".
func NewEd25519SigningKey(keyID string, priv ed25519.PrivateKey) httpsig.SigningKey {
	return &ed25519Key{keyID: keyID, priv: priv}
}

// NewEd25519VerifyingKey wraps pub as a VerifyingKey for "ed25519".
func NewEd25519VerifyingKey(pub ed25519.PublicKey) httpsig.VerifyingKey {
	return &ed25519Key{pub: pub}
}
