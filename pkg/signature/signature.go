// Package signature verifies payment gateway signatures: a hex encoded
// HMAC-SHA256 of a canonical payload keyed with the gateway key secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// OrderPayload is the canonical string of a checkout (gateway order) payment.
func OrderPayload(gatewayOrderID, paymentID string) string {
	return gatewayOrderID + "|" + paymentID
}

// PaymentLinkPayload is the canonical string of a payment link callback.
func PaymentLinkPayload(paymentID, paymentLinkID string) string {
	return paymentID + "|" + paymentLinkID
}

func Sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches payload. The comparison is constant time.
func Verify(payload, signature, secret string) bool {
	expected := Sign(payload, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
