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

package httpsig

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCavageHeader(t *testing.T) {
	sig := base64.StdEncoding.EncodeToString([]byte("fake-signature-bytes"))
	header := `keyId="rsa-key-1",algorithm="hs2019",created=1402170695,expires=1402170995,headers="(request-target) (created) (expires) host date",signature="` + sig + `"`
	p, err := parseCavageHeader(header)
	require.NoError(t, err)
	assert.Equal(t, "rsa-key-1", p.KeyID)
	assert.Equal(t, "hs2019", p.Algorithm)
	require.NotNil(t, p.Created)
	assert.Equal(t, int64(1402170695), *p.Created)
	require.NotNil(t, p.Expires)
	assert.Equal(t, int64(1402170995), *p.Expires)
	assert.Equal(t, []string{"(request-target)", "(created)", "(expires)", "host", "date"}, p.Headers)
	assert.Equal(t, []byte("fake-signature-bytes"), p.Signature)
}

func TestParseCavageHeader_DefaultsHeadersToCreated(t *testing.T) {
	sig := base64.StdEncoding.EncodeToString([]byte("x"))
	header := `keyId="k1",signature="` + sig + `"`
	p, err := parseCavageHeader(header)
	require.NoError(t, err)
	assert.Equal(t, []string{"(created)"}, p.Headers)
}

func TestParseCavageHeader_MissingKeyID(t *testing.T) {
	sig := base64.StdEncoding.EncodeToString([]byte("x"))
	_, err := parseCavageHeader(`signature="` + sig + `"`)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestCavageAlgorithmName_MapsNamedAlgorithmsToLegacyTokens(t *testing.T) {
	assert.Equal(t, "hs2019", cavageAlgorithmName("rsa-pss-sha512"))
	assert.Equal(t, "rsa-sha1", cavageAlgorithmName("rsa-v1_5-sha1"))
	assert.Equal(t, "rsa-sha256", cavageAlgorithmName("rsa-v1_5-sha256"))
	assert.Equal(t, "ecdsa-sha256", cavageAlgorithmName("ecdsa-p256-sha256"))
}

func TestCavageAlgorithmName_UnlistedAlgorithmsPassThrough(t *testing.T) {
	assert.Equal(t, "ecdsa-p384-sha384", cavageAlgorithmName("ecdsa-p384-sha384"))
	assert.Equal(t, "ed25519", cavageAlgorithmName("ed25519"))
	assert.Equal(t, "hmac-sha256", cavageAlgorithmName("hmac-sha256"))
	assert.Equal(t, "some-future-alg", cavageAlgorithmName("some-future-alg"))
}

func TestCavageModernAlgorithmName_ReversesLegacyTokens(t *testing.T) {
	assert.Equal(t, "rsa-v1_5-sha1", cavageModernAlgorithmName("rsa-sha1"))
	assert.Equal(t, "rsa-v1_5-sha256", cavageModernAlgorithmName("rsa-sha256"))
	assert.Equal(t, "ecdsa-p256-sha256", cavageModernAlgorithmName("ecdsa-sha256"))
}

func TestCavageModernAlgorithmName_HS2019PassesThrough(t *testing.T) {
	assert.Equal(t, "hs2019", cavageModernAlgorithmName("hs2019"))
}
