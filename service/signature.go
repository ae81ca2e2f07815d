package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// VerifyWebhookSignature checks that signature is the base64 HMAC-SHA256
// of body keyed with secret. The hash must be computed over the exact
// raw bytes Shopify sent; re-serializing the parsed JSON changes
// whitespace and key order and breaks the signature.
// A missing signature or secret always fails.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// ComputeWebhookSignature returns the base64 HMAC-SHA256 of body keyed
// with secret. Shopify sends this value in the X-Shopify-Hmac-Sha256
// header; tests use it to sign synthetic payloads.
func ComputeWebhookSignature(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
