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

// Command sign-verify-demo wires the signing transport and the
// verification middleware together behind a chi router, and performs
// one full sign -> transmit -> verify round trip against itself.
package main

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"flag"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/sage-x-project/httpsig/pkg/component"
	"github.com/sage-x-project/httpsig/pkg/cryptoutil"
	"github.com/sage-x-project/httpsig/pkg/httpsig"
	"github.com/sage-x-project/httpsig/pkg/server"
	"github.com/sage-x-project/httpsig/pkg/transport"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to TOML config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	cfg, err := loadConfig(configPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatal().Err(err).Msg("generate demo key pair")
	}
	signer, err := cryptoutil.NewECDSAP256SigningKey("demo-key", priv)
	if err != nil {
		log.Fatal().Err(err).Msg("build signing key")
	}
	verifier, err := cryptoutil.NewECDSAP256VerifyingKey(&priv.PublicKey)
	if err != nil {
		log.Fatal().Err(err).Msg("build verifying key")
	}

	components := identifiersFrom(cfg.Components)
	requiredComponents := identifiersFrom(cfg.RequiredFields)

	verifyMW := server.NewVerifyMiddleware(httpsig.VerifyConfig{
		KeyLookup:          httpsig.StaticKeyLookup(verifier),
		RequiredComponents: requiredComponents,
		MaxAge:             time.Duration(cfg.MaxAgeSeconds) * time.Second,
		ClockSkewTolerance: time.Duration(cfg.ToleranceSeconds) * time.Second,
	})
	verifyMW.SetLogger(log)

	router := chi.NewRouter()
	router.With(verifyMW.Wrap).Post("/echo", echoHandler(log))

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.ListenAddr).Msg("listen")
	}
	srv := &http.Server{Handler: router}
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("serve")
		}
	}()
	defer srv.Close()

	rt := transport.NewSigningTransport(nil, httpsig.SignConfig{
		Label:      cfg.SignatureLabel,
		Components: components,
		Key:        signer,
	})
	rt.SetLogger(log)
	client := &http.Client{Transport: rt}

	body := []byte(`{"hello":"world"}`)
	req, err := http.NewRequest(http.MethodPost, "http://"+listener.Addr().String()+"/echo", bytes.NewReader(body))
	if err != nil {
		log.Fatal().Err(err).Msg("build demo request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Fatal().Err(err).Msg("round trip")
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	log.Info().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("round trip complete")
}

func identifiersFrom(names []string) []component.Identifier {
	ids := make([]component.Identifier, len(names))
	for i, name := range names {
		ids[i] = component.NewIdentifier(name)
	}
	return ids
}

func echoHandler(log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, ok := server.VerifyResultsFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.Info().Int("signatures", len(results)).Str("label", results[0].Label).Msg("request verified")

		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
