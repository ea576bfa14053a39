package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ComputeSignature returns the HMAC-SHA256 of body under key.
func ComputeSignature(key string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(body)
	return mac.Sum(nil)
}

// decodeSignature parses the signature header, accepting "sha256=<hex>",
// "0x<hex>" and bare hex forms.
func decodeSignature(header string) ([]byte, bool) {
	sig := strings.TrimSpace(header)
	sig = strings.TrimPrefix(sig, "sha256=")
	sig = strings.TrimPrefix(sig, "0x")

	raw, err := hex.DecodeString(sig)
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

// verifySignature compares the header against the HMAC of the raw body in
// constant time.
func verifySignature(key string, body []byte, header string) bool {
	given, ok := decodeSignature(header)
	if !ok {
		return false
	}
	return hmac.Equal(ComputeSignature(key, body), given)
}
