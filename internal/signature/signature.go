// Package signature implements webhook payload authentication for the
// WhatsApp Cloud API. The provider signs each delivery with HMAC-SHA256
// over the exact raw request body, keyed with the app secret, and sends
// the lowercase hex digest in the X-Hub-Signature-256 header as
// "sha256=<digest>".
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Prefix is the algorithm prefix the provider puts in front of the digest.
const Prefix = "sha256="

// Sign computes the lowercase hex HMAC-SHA256 digest of payload under secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether headerSignature authenticates payload under secret.
//
// The optional "sha256=" prefix is stripped before comparison. The computed
// digest is compared in constant time: equal lengths are required up front
// (length leakage is unavoidable), then subtle.ConstantTimeCompare
// accumulates the bitwise difference across every byte with no early exit.
//
// Verify fails closed: malformed input yields false, never an error. The
// digest always covers the untouched raw bytes as received on the wire;
// callers must not re-serialize the payload before verification.
func Verify(payload []byte, headerSignature, secret string) bool {
	if headerSignature == "" || secret == "" {
		return false
	}

	got := strings.TrimPrefix(headerSignature, Prefix)
	want := Sign(payload, secret)

	if len(got) != len(want) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
