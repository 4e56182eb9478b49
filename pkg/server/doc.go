// Package server provides HTTP middleware for httpbis signature verification.
//
// The server package implements HTTP middleware that verifies the
// Signature and Signature-Input headers (RFC 9421) on incoming
// requests, using pkg/httpsig for the actual verification work. The
// middleware never touches key material or transport directly — it
// asks a caller-supplied httpsig.VerifyConfig (whose KeyLookup resolves
// verifying keys) to do the cryptography, and records the results.
//
// # Features
//
//   - httpbis Signature/Signature-Input header verification
//   - Verified-signature propagation via request context
//   - Optional verification mode (allow unsigned requests through)
//   - CORS preflight support (OPTIONS requests skip verification)
//   - Custom error handler support
//   - Request body preservation
//
// # Basic Usage
//
//	cfg := httpsig.VerifyConfig{
//	    KeyLookup: httpsig.StaticKeyLookup(verifier),
//	}
//	middleware := server.NewVerifyMiddleware(cfg)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    results, ok := server.VerifyResultsFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "verified signatures: %v", results)
//	})
//
//	http.Handle("/api/", middleware.Wrap(handler))
//
// # Optional Verification
//
//	middleware.SetOptional(true)
//
// # Custom Error Handler
//
//	middleware.SetErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
//	    log.Printf("verification failed: %v", err)
//	    http.Error(w, "Custom error message", http.StatusForbidden)
//	})
//
// # How It Works
//
// VerifyMiddleware performs the following steps for each request:
//
//  1. Skips verification for OPTIONS requests (CORS preflight)
//  2. Checks for Signature and Signature-Input headers
//  3. Buffers and restores the request body around verification
//  4. Calls httpsig.VerifyHTTPBIS against the configured VerifyConfig
//  5. Stores the resulting []httpsig.VerifyResult in the request context
//  6. Calls the next handler in the chain
//
// If verification fails at any step, the middleware returns 401
// Unauthorized (or whatever the configured ErrorHandler does) and does
// not call the next handler.
//
// # Body Preservation
//
// The middleware reads and preserves the request body so it can be
// used by downstream handlers. The body is buffered in memory during
// verification and restored before calling the next handler.
//
// # Thread Safety
//
// VerifyMiddleware is safe for concurrent use by multiple goroutines
// and can be shared across multiple HTTP servers.
package server
