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

package httpsig_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/cryptoutil"
	"github.com/sage-x-project/httpsig/pkg/httpsig"
)

func testRequest(t *testing.T) component.Message {
	t.Helper()
	u, err := url.Parse("https://example.com/foo?bar=baz")
	require.NoError(t, err)
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Content-Digest", "sha-256=:X48E9qOokqqrvdts8nOJRJN3OWDUoyWxBf7kbu9DBPE=:")
	return component.NewRequestMessage("POST", u, header)
}

// newECDSAKeyPair builds a matching SigningKey/VerifyingKey pair over a
// freshly generated P-256 key, so tests never need to reach into a
// SigningKey's private fields to build its counterpart.
func newECDSAKeyPair(t *testing.T, keyID string) (httpsig.SigningKey, httpsig.VerifyingKey) {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	signer, err := cryptoutil.NewECDSAP256SigningKey(keyID, priv)
	require.NoError(t, err)
	verifier, err := cryptoutil.NewECDSAP256VerifyingKey(&priv.PublicKey)
	require.NoError(t, err)
	return signer, verifier
}

func TestSignVerify_HTTPBIS_RoundTrip(t *testing.T) {
	signer, verifier := newECDSAKeyPair(t, "test-key-ecdsa-p256")

	msg := testRequest(t)
	created := time.Unix(1618884473, 0)
	cfg := httpsig.SignConfig{
		Label: "sig1",
		Components: []component.Identifier{
			component.NewIdentifier("@method"),
			component.NewIdentifier("@authority"),
			component.NewIdentifier("@path"),
			component.NewIdentifier("content-digest"),
		},
		Key:     signer,
		Created: created,
	}
	signed, err := httpsig.Sign(msg, cfg)
	require.NoError(t, err)
	assert.Contains(t, signed.SignatureInput, "sig1=")
	assert.Contains(t, signed.Signature, "sig1=")

	results, err := httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{
		KeyLookup: httpsig.StaticKeyLookup(verifier),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "sig1", results[0].Label)
	assert.Equal(t, "test-key-ecdsa-p256", results[0].KeyID)
}

func TestSignVerify_HTTPBIS_TamperedBodyFails(t *testing.T) {
	signer, verifier := newECDSAKeyPair(t, "k1")
	msg := testRequest(t)
	cfg := httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@method"), component.NewIdentifier("content-digest")},
		Key:        signer,
	}
	signed, err := httpsig.Sign(msg, cfg)
	require.NoError(t, err)

	tampered := msg
	tampered.Request.Header = msg.Request.Header.Clone()
	tampered.Request.Header.Set("Content-Digest", "sha-256=:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=:")

	_, err = httpsig.VerifyHTTPBIS(context.Background(), tampered, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{
		KeyLookup: httpsig.StaticKeyLookup(verifier),
	})
	assert.ErrorIs(t, err, httpsig.ErrVerificationFailed)
}

func TestSignVerify_HTTPBIS_MultipleSignatures_UniqueLabels(t *testing.T) {
	signer1, _ := newECDSAKeyPair(t, "k1")
	signer2, _ := newECDSAKeyPair(t, "k2")
	msg := testRequest(t)

	_, err := httpsig.SignMulti(msg, []httpsig.SignConfig{
		{Label: "sig1", Components: []component.Identifier{component.NewIdentifier("@method")}, Key: signer1},
		{Label: "sig1", Components: []component.Identifier{component.NewIdentifier("@path")}, Key: signer2},
	})
	assert.ErrorIs(t, err, httpsig.ErrDuplicateLabel)
}

func TestSignVerify_HTTPBIS_MultipleSignatures_BothVerify(t *testing.T) {
	signer1, verifier1 := newECDSAKeyPair(t, "k1")
	signer2, verifier2 := newECDSAKeyPair(t, "k2")
	msg := testRequest(t)

	signed, err := httpsig.SignMulti(msg, []httpsig.SignConfig{
		{Label: "sig1", Components: []component.Identifier{component.NewIdentifier("@method")}, Key: signer1},
		{Label: "sig2", Components: []component.Identifier{component.NewIdentifier("@path")}, Key: signer2},
	})
	require.NoError(t, err)

	lookup := httpsig.KeyLookupFunc(func(_ context.Context, keyID, _ string) (httpsig.VerifyingKey, error) {
		switch keyID {
		case "k1":
			return verifier1, nil
		case "k2":
			return verifier2, nil
		default:
			return nil, httpsig.ErrUnknownKey
		}
	})
	results, err := httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{KeyLookup: lookup, All: true})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSignVerify_HTTPBIS_Expired(t *testing.T) {
	signer, verifier := newECDSAKeyPair(t, "k1")
	msg := testRequest(t)
	cfg := httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@method")},
		Key:        signer,
		Created:    time.Unix(1000, 0),
		Expires:    time.Unix(2000, 0),
	}
	signed, err := httpsig.Sign(msg, cfg)
	require.NoError(t, err)

	_, err = httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{
		KeyLookup: httpsig.StaticKeyLookup(verifier),
		Now:       func() time.Time { return time.Unix(5000, 0) },
	})
	assert.ErrorIs(t, err, httpsig.ErrExpired)
}

func TestSignVerify_HTTPBIS_RequiredComponentMissing(t *testing.T) {
	signer, verifier := newECDSAKeyPair(t, "k1")
	msg := testRequest(t)
	cfg := httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@method")},
		Key:        signer,
	}
	signed, err := httpsig.Sign(msg, cfg)
	require.NoError(t, err)

	_, err = httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{
		KeyLookup:          httpsig.StaticKeyLookup(verifier),
		RequiredComponents: []component.Identifier{component.NewIdentifier("content-digest")},
	})
	assert.ErrorIs(t, err, httpsig.ErrUnacceptableSignature)
}

func TestSign_MergesWithExistingSignedMessage(t *testing.T) {
	signer1, verifier1 := newECDSAKeyPair(t, "k1")
	signer2, verifier2 := newECDSAKeyPair(t, "k2")
	msg := testRequest(t)

	first, err := httpsig.Sign(msg, httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@method")},
		Key:        signer1,
	})
	require.NoError(t, err)

	second, err := httpsig.Sign(msg, httpsig.SignConfig{
		Label:      "sig2",
		Components: []component.Identifier{component.NewIdentifier("@path")},
		Key:        signer2,
	}, first)
	require.NoError(t, err)
	assert.Contains(t, second.SignatureInput, "sig1=")
	assert.Contains(t, second.SignatureInput, "sig2=")
	assert.Contains(t, second.Signature, "sig1=")
	assert.Contains(t, second.Signature, "sig2=")

	lookup := httpsig.KeyLookupFunc(func(_ context.Context, keyID, _ string) (httpsig.VerifyingKey, error) {
		switch keyID {
		case "k1":
			return verifier1, nil
		case "k2":
			return verifier2, nil
		default:
			return nil, httpsig.ErrUnknownKey
		}
	})
	results, err := httpsig.VerifyHTTPBIS(context.Background(), msg, second.SignatureInput, second.Signature, httpsig.VerifyConfig{KeyLookup: lookup, All: true})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSign_RenamesLabelOnCollisionWithExisting(t *testing.T) {
	signer1, _ := newECDSAKeyPair(t, "k1")
	signer2, verifier2 := newECDSAKeyPair(t, "k2")
	msg := testRequest(t)

	first, err := httpsig.Sign(msg, httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@method")},
		Key:        signer1,
	})
	require.NoError(t, err)

	second, err := httpsig.Sign(msg, httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@path")},
		Key:        signer2,
	}, first)
	require.NoError(t, err)
	assert.Contains(t, second.SignatureInput, "sig10=")

	lookup := httpsig.StaticKeyLookup(verifier2)
	results, err := httpsig.VerifyHTTPBIS(context.Background(), msg, second.SignatureInput, second.Signature, httpsig.VerifyConfig{KeyLookup: lookup, Labels: []string{"sig10"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "sig10", results[0].Label)
}

func TestSignVerify_HTTPBIS_RequiredParamMissing(t *testing.T) {
	signer, verifier := newECDSAKeyPair(t, "k1")
	msg := testRequest(t)
	cfg := httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@method")},
		Key:        signer,
	}
	signed, err := httpsig.Sign(msg, cfg)
	require.NoError(t, err)

	_, err = httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{
		KeyLookup:      httpsig.StaticKeyLookup(verifier),
		RequiredParams: []string{"nonce"},
	})
	assert.ErrorIs(t, err, httpsig.ErrUnacceptableSignature)
}

func TestSignVerify_HTTPBIS_NotAfter(t *testing.T) {
	signer, verifier := newECDSAKeyPair(t, "k1")
	msg := testRequest(t)
	cfg := httpsig.SignConfig{
		Label:      "sig1",
		Components: []component.Identifier{component.NewIdentifier("@method")},
		Key:        signer,
		Created:    time.Unix(5000, 0),
	}
	signed, err := httpsig.Sign(msg, cfg)
	require.NoError(t, err)

	_, err = httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{
		KeyLookup: httpsig.StaticKeyLookup(verifier),
		NotAfter:  time.Unix(1000, 0),
	})
	assert.ErrorIs(t, err, httpsig.ErrExpired)
}

func TestSignVerify_HTTPBIS_NonAllMode_SkipsUnknownKeyAndSucceeds(t *testing.T) {
	signer1, _ := newECDSAKeyPair(t, "k1")
	signer2, verifier2 := newECDSAKeyPair(t, "k2")
	msg := testRequest(t)

	signed, err := httpsig.SignMulti(msg, []httpsig.SignConfig{
		{Label: "sig1", Components: []component.Identifier{component.NewIdentifier("@method")}, Key: signer1},
		{Label: "sig2", Components: []component.Identifier{component.NewIdentifier("@path")}, Key: signer2},
	})
	require.NoError(t, err)

	lookup := httpsig.KeyLookupFunc(func(_ context.Context, keyID, _ string) (httpsig.VerifyingKey, error) {
		if keyID == "k2" {
			return verifier2, nil
		}
		return nil, httpsig.ErrUnknownKey
	})
	results, err := httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{KeyLookup: lookup})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "sig2", results[0].Label)
}

func TestSignVerify_HTTPBIS_AllMode_UnknownKeyFailsRegardlessOfOtherSignature(t *testing.T) {
	signer1, verifier1 := newECDSAKeyPair(t, "k1")
	signer2, _ := newECDSAKeyPair(t, "k2")
	msg := testRequest(t)

	signed, err := httpsig.SignMulti(msg, []httpsig.SignConfig{
		{Label: "sig1", Components: []component.Identifier{component.NewIdentifier("@method")}, Key: signer1},
		{Label: "sig2", Components: []component.Identifier{component.NewIdentifier("@path")}, Key: signer2},
	})
	require.NoError(t, err)

	lookup := httpsig.KeyLookupFunc(func(_ context.Context, keyID, _ string) (httpsig.VerifyingKey, error) {
		if keyID == "k1" {
			return verifier1, nil
		}
		return nil, httpsig.ErrUnknownKey
	})
	_, err = httpsig.VerifyHTTPBIS(context.Background(), msg, signed.SignatureInput, signed.Signature, httpsig.VerifyConfig{KeyLookup: lookup, All: true})
	assert.ErrorIs(t, err, httpsig.ErrUnknownKey)
}

func TestSignVerify_Cavage_RoundTrip(t *testing.T) {
	signer, verifier := newECDSAKeyPair(t, "test-key")
	msg := testRequest(t)
	created := time.Unix(1402170695, 0)
	cfg := httpsig.SignConfig{
		Dialect: httpsig.Cavage,
		Components: []component.Identifier{
			component.NewIdentifier("(request-target)"),
			component.NewIdentifier("(created)"),
			component.NewIdentifier("content-type"),
		},
		Key:     signer,
		Created: created,
	}
	signed, err := httpsig.Sign(msg, cfg)
	require.NoError(t, err)
	assert.Empty(t, signed.SignatureInput)
	assert.Contains(t, signed.Signature, `keyId="test-key"`)
	assert.Contains(t, signed.Signature, `algorithm="ecdsa-sha256"`)

	result, err := httpsig.VerifyCavage(context.Background(), msg, signed.Signature, httpsig.VerifyConfig{
		KeyLookup: httpsig.StaticKeyLookup(verifier),
	})
	require.NoError(t, err)
	assert.Equal(t, "test-key", result.KeyID)
}

func TestSignMulti_Cavage_RejectsMoreThanOne(t *testing.T) {
	signer, _ := newECDSAKeyPair(t, "k1")
	msg := testRequest(t)
	cfg := httpsig.SignConfig{Dialect: httpsig.Cavage, Components: []component.Identifier{component.NewIdentifier("@method")}, Key: signer}
	_, err := httpsig.SignMulti(msg, []httpsig.SignConfig{cfg, cfg})
	assert.ErrorIs(t, err, httpsig.ErrMalformedInput)
}
