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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/sfv"
	"github.com/sage-x-project/httpsig/pkg/sigbase"
)

// VerifyResult describes one signature that passed verification.
type VerifyResult struct {
	Label      string
	Algorithm  string
	KeyID      string
	Components []component.Identifier
	Created    *int64
	Expires    *int64
}

// VerifyHTTPBIS checks the signatures named by cfg.Labels (or, if
// empty, every signature present) in the Signature-Input/Signature
// header pair, in order. With cfg.All unset it returns as soon as one
// signature passes, with that single result and a nil error; failures
// of earlier labels are then dropped, and the first failure is returned
// only if none passes. With cfg.All set it checks every selected label
// and stops at the first failure, returning the results that passed
// before it together with the error.
func VerifyHTTPBIS(ctx context.Context, msg component.Message, signatureInput, signature string, cfg VerifyConfig) ([]VerifyResult, error) {
	if signatureInput == "" || signature == "" {
		return nil, ErrNoSignatures
	}
	inputDict, err := sfv.ParseDictionary(signatureInput)
	if err != nil {
		return nil, fmt.Errorf("%w: Signature-Input: %v", ErrMalformedInput, err)
	}
	sigDict, err := sfv.ParseDictionary(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: Signature: %v", ErrMalformedInput, err)
	}

	var results []VerifyResult
	var firstErr error
	for _, entry := range inputDict {
		label := entry.Key
		if !cfg.wantsLabel(label) {
			continue
		}
		result, err := verifyOneHTTPBIS(ctx, msg, label, entry.Value, sigDict, cfg)
		if err != nil {
			if cfg.All {
				return results, err
			}
			if errors.Is(err, ErrUnknownKey) {
				continue
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, result)
		if !cfg.All {
			return results, nil
		}
	}
	if len(results) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, ErrNoSignatures
	}
	return results, nil
}

func verifyOneHTTPBIS(ctx context.Context, msg component.Message, label string, inputMember sfv.Member, sigDict sfv.Dictionary, cfg VerifyConfig) (VerifyResult, error) {
	inner, ok := inputMember.(sfv.InnerList)
	if !ok {
		return VerifyResult{}, fmt.Errorf("%w: Signature-Input entry %q is not an inner list", ErrMalformedInput, label)
	}
	sigMember, ok := sigDict.Get(label)
	if !ok {
		return VerifyResult{}, fmt.Errorf("%w: Signature is missing label %q", ErrMalformedInput, label)
	}
	sigItem, ok := sigMember.(sfv.Item)
	if !ok {
		return VerifyResult{}, fmt.Errorf("%w: Signature entry %q is not a byte sequence", ErrMalformedInput, label)
	}
	sigBytes, ok := sigItem.Value.(sfv.Bytes)
	if !ok {
		return VerifyResult{}, fmt.Errorf("%w: Signature entry %q is not a byte sequence", ErrMalformedInput, label)
	}

	components := make([]component.Identifier, len(inner.Items))
	for i, it := range inner.Items {
		name, ok := it.Value.(string)
		if !ok {
			return VerifyResult{}, fmt.Errorf("%w: component identifier must be a string", ErrMalformedInput)
		}
		components[i] = component.Identifier{Name: name, Params: it.Params}
	}

	created := paramInt64(inner.Params, "created")
	expires := paramInt64(inner.Params, "expires")
	nonce, _ := paramString(inner.Params, "nonce")
	alg, _ := paramString(inner.Params, "alg")
	keyid, _ := paramString(inner.Params, "keyid")
	tag, _ := paramString(inner.Params, "tag")

	if err := checkAcceptance(components, alg, created, expires, inner.Params, cfg); err != nil {
		return VerifyResult{}, err
	}

	key, err := cfg.KeyLookup.LookupVerifyingKey(ctx, keyid, alg)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("%w: %v", ErrUnknownKey, err)
	}
	if alg != "" && key.Algorithm() != alg {
		return VerifyResult{}, fmt.Errorf("%w: label %q names %q, key verifies %q", ErrUnsupportedAlgorithm, label, alg, key.Algorithm())
	}

	params := sigbase.Params{
		Components: components,
		Created:    created,
		Expires:    expires,
		Nonce:      nonce,
		Alg:        alg,
		KeyID:      keyid,
		Tag:        tag,
	}
	base, err := sigbase.BuildHTTPBIS(msg, params)
	if err != nil {
		return VerifyResult{}, err
	}
	if err := key.Verify([]byte(base), []byte(sigBytes)); err != nil {
		return VerifyResult{}, fmt.Errorf("%w: label %q: %v", ErrVerificationFailed, label, err)
	}

	return VerifyResult{
		Label:      label,
		Algorithm:  alg,
		KeyID:      keyid,
		Components: components,
		Created:    created,
		Expires:    expires,
	}, nil
}

// VerifyCavage checks a single legacy Signature (or Authorization)
// header value against msg.
func VerifyCavage(ctx context.Context, msg component.Message, signatureHeader string, cfg VerifyConfig) (VerifyResult, error) {
	if signatureHeader == "" {
		return VerifyResult{}, ErrNoSignatures
	}
	parsed, err := parseCavageHeader(signatureHeader)
	if err != nil {
		return VerifyResult{}, err
	}
	components := parsed.components()
	alg := cavageModernAlgorithmName(parsed.Algorithm)

	presentParams := cavagePresentParams(parsed)
	if err := checkAcceptance(components, alg, parsed.Created, parsed.Expires, presentParams, cfg); err != nil {
		return VerifyResult{}, err
	}

	key, err := cfg.KeyLookup.LookupVerifyingKey(ctx, parsed.KeyID, alg)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("%w: %v", ErrUnknownKey, err)
	}

	params := sigbase.Params{Components: components, Created: parsed.Created, Expires: parsed.Expires}
	base, err := sigbase.BuildCavage(msg, params)
	if err != nil {
		return VerifyResult{}, err
	}
	if err := key.Verify([]byte(base), parsed.Signature); err != nil {
		return VerifyResult{}, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	return VerifyResult{
		Algorithm:  alg,
		KeyID:      parsed.KeyID,
		Components: components,
		Created:    parsed.Created,
		Expires:    parsed.Expires,
	}, nil
}

// cavagePresentParams renders the signature parameters a parsed cavage
// header actually carried as an sfv.Params set, so checkAcceptance can
// apply cfg.RequiredParams uniformly across both dialects.
func cavagePresentParams(p cavageParams) sfv.Params {
	var params sfv.Params
	if p.KeyID != "" {
		params = params.With("keyid", p.KeyID)
	}
	if p.Algorithm != "" {
		params = params.With("alg", p.Algorithm)
	}
	if p.Created != nil {
		params = params.With("created", *p.Created)
	}
	if p.Expires != nil {
		params = params.With("expires", *p.Expires)
	}
	if len(p.Headers) > 0 {
		params = params.With("headers", true)
	}
	return params
}

// checkAcceptance applies a VerifyConfig's policy to one signature's
// covered components, parameters, algorithm and freshness window,
// independent of dialect. presentParams is the raw parameter set the
// Signature-Input entry (or, for cavage, the parsed header) actually
// carried, used to enforce cfg.RequiredParams.
func checkAcceptance(components []component.Identifier, alg string, created, expires *int64, presentParams sfv.Params, cfg VerifyConfig) error {
	for _, req := range cfg.RequiredComponents {
		wantLabel, err := req.CanonicalString()
		if err != nil {
			return err
		}
		found := false
		for _, c := range components {
			got, err := c.CanonicalString()
			if err != nil {
				continue
			}
			if got == wantLabel {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: required component %q not covered", ErrUnacceptableSignature, req.Name)
		}
	}
	for _, rp := range cfg.RequiredParams {
		if !presentParams.Has(rp) {
			return fmt.Errorf("%w: required parameter %q missing", ErrUnacceptableSignature, rp)
		}
	}
	if !cfg.acceptsAlgorithm(alg) {
		return fmt.Errorf("%w: algorithm %q not accepted", ErrUnacceptableSignature, alg)
	}

	now := cfg.now()
	tol := cfg.ClockSkewTolerance
	if cfg.MaxAge > 0 && created != nil {
		age := now.Sub(time.Unix(*created, 0))
		if age > cfg.MaxAge+tol {
			return fmt.Errorf("%w: created %d exceeds max age", ErrExpired, *created)
		}
	}
	if !cfg.NotAfter.IsZero() && created != nil {
		if time.Unix(*created, 0).After(cfg.NotAfter) {
			return fmt.Errorf("%w: created %d is after notAfter", ErrExpired, *created)
		}
	}
	if expires != nil {
		deadline := time.Unix(*expires, 0).Add(tol)
		if now.After(deadline) {
			return fmt.Errorf("%w: expired at %d", ErrExpired, *expires)
		}
	}
	return nil
}

func paramInt64(params sfv.Params, key string) *int64 {
	v, ok := params.Get(key)
	if !ok {
		return nil
	}
	switch x := v.(type) {
	case int64:
		return &x
	case int:
		i := int64(x)
		return &i
	}
	return nil
}

func paramString(params sfv.Params, key string) (string, bool) {
	v, ok := params.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
