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
	"fmt"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/sfv"
	"github.com/sage-x-project/httpsig/pkg/sigbase"
)

// SignedMessage carries the header values a caller attaches to the
// outgoing message. SignatureInput is empty for the Cavage dialect,
// which carries its parameters inline in Signature instead.
type SignedMessage struct {
	SignatureInput string
	Signature      string
}

// Sign produces a single signature over msg per cfg. existing, if
// supplied, is the message's pre-existing SignedMessage (e.g. the
// Signature/Signature-Input headers already on a request being
// forwarded); its entries are preserved and cfg.Label is renamed on
// collision. At most one existing value may be passed.
func Sign(msg component.Message, cfg SignConfig, existing ...SignedMessage) (SignedMessage, error) {
	out, err := SignMulti(msg, []SignConfig{cfg}, existing...)
	if err != nil {
		return SignedMessage{}, err
	}
	return out, nil
}

// SignMulti produces one or more signatures over msg in a single call,
// enforcing the label-uniqueness invariant across them. Cavage carries
// only one signature per message; passing more than one Cavage config
// is an error, and existing is ignored (cavage has no label dictionary
// to merge into). existing, if supplied, is the httpbis dialect's
// pre-existing Signature/Signature-Input pair: its entries are
// preserved, and any cfgs[i].Label already present is renamed by
// appending the smallest non-negative integer that produces a free
// label.
func SignMulti(msg component.Message, cfgs []SignConfig, existing ...SignedMessage) (SignedMessage, error) {
	if len(cfgs) == 0 {
		return SignedMessage{}, fmt.Errorf("%w: no signatures requested", ErrMalformedInput)
	}
	if len(existing) > 1 {
		return SignedMessage{}, fmt.Errorf("%w: at most one existing SignedMessage may be supplied", ErrMalformedInput)
	}
	dialect := cfgs[0].Dialect
	for _, c := range cfgs {
		if c.Dialect != dialect {
			return SignedMessage{}, fmt.Errorf("%w: all signatures in one call must share a dialect", ErrMalformedInput)
		}
	}
	if dialect == Cavage {
		if len(cfgs) != 1 {
			return SignedMessage{}, fmt.Errorf("%w: cavage supports only one signature per message", ErrMalformedInput)
		}
		return signCavage(msg, cfgs[0])
	}
	if err := validateLabels(cfgs); err != nil {
		return SignedMessage{}, err
	}
	var prior SignedMessage
	if len(existing) == 1 {
		prior = existing[0]
	}
	return signHTTPBIS(msg, cfgs, prior)
}

func signHTTPBIS(msg component.Message, cfgs []SignConfig, existing SignedMessage) (SignedMessage, error) {
	inputEntries, sigEntries, err := parseExistingHTTPBIS(existing)
	if err != nil {
		return SignedMessage{}, err
	}

	for _, cfg := range cfgs {
		if cfg.Key == nil {
			return SignedMessage{}, fmt.Errorf("%w: signature %q has no key", ErrMalformedInput, cfg.Label)
		}
		label := uniqueLabel(cfg.Label, inputEntries)
		created := cfg.createdUnix()
		params := sigbase.Params{
			Components: cfg.Components,
			Created:    &created,
			Expires:    cfg.expiresUnix(),
			Nonce:      cfg.Nonce,
			Alg:        cfg.Key.Algorithm(),
			KeyID:      cfg.Key.KeyID(),
			Tag:        cfg.Tag,
		}
		base, err := sigbase.BuildHTTPBIS(msg, params)
		if err != nil {
			return SignedMessage{}, err
		}
		raw, err := cfg.Key.Sign([]byte(base))
		if err != nil {
			return SignedMessage{}, fmt.Errorf("httpsig: sign %q: %w", cfg.Label, err)
		}
		inputEntries = inputEntries.Set(label, params.InnerList())
		sigEntries = sigEntries.Set(label, sfv.NewItem(sfv.Bytes(raw)))
	}

	inputStr, err := sfv.SerializeDictionary(inputEntries)
	if err != nil {
		return SignedMessage{}, err
	}
	sigStr, err := sfv.SerializeDictionary(sigEntries)
	if err != nil {
		return SignedMessage{}, err
	}
	return SignedMessage{SignatureInput: inputStr, Signature: sigStr}, nil
}

// parseExistingHTTPBIS parses a pre-existing Signature-Input/Signature
// pair into the dictionaries new entries get merged into. An existing
// value with one header set but not the other is malformed; an empty
// existing is simply two empty dictionaries.
func parseExistingHTTPBIS(existing SignedMessage) (sfv.Dictionary, sfv.Dictionary, error) {
	if existing.SignatureInput == "" && existing.Signature == "" {
		return nil, nil, nil
	}
	if existing.SignatureInput == "" || existing.Signature == "" {
		return nil, nil, fmt.Errorf("%w: existing SignedMessage must set both SignatureInput and Signature, or neither", ErrMalformedInput)
	}
	inputEntries, err := sfv.ParseDictionary(existing.SignatureInput)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: existing Signature-Input: %v", ErrMalformedInput, err)
	}
	sigEntries, err := sfv.ParseDictionary(existing.Signature)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: existing Signature: %v", ErrMalformedInput, err)
	}
	return inputEntries, sigEntries, nil
}

// uniqueLabel returns label if it is free in existing, else label with
// the smallest non-negative integer suffix that is.
func uniqueLabel(label string, existing sfv.Dictionary) string {
	if !existing.Has(label) {
		return label
	}
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s%d", label, i)
		if !existing.Has(candidate) {
			return candidate
		}
	}
}
