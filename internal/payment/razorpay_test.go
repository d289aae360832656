package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ajaypanchal761/createbharat-sub000/internal/payment"
	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_key_secret"
	orderID := "order_N1a2b3c4d5e6f7"
	paymentID := "pay_N7f6e5d4c3b2a1"

	t.Run("accepts a valid signature", func(t *testing.T) {
		valid := sign(secret, orderID, paymentID)
		assert.True(t, payment.VerifySignature(secret, orderID, paymentID, valid))
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		valid := sign(secret, orderID, paymentID)
		tampered := "0" + valid[1:]
		if tampered == valid {
			tampered = "1" + valid[1:]
		}
		assert.False(t, payment.VerifySignature(secret, orderID, paymentID, tampered))
	})

	t.Run("rejects a signature over different ids", func(t *testing.T) {
		other := sign(secret, orderID, "pay_other")
		assert.False(t, payment.VerifySignature(secret, orderID, paymentID, other))
	})

	t.Run("rejects a signature with the wrong secret", func(t *testing.T) {
		other := sign("wrong_secret", orderID, paymentID)
		assert.False(t, payment.VerifySignature(secret, orderID, paymentID, other))
	})

	t.Run("rejects an empty signature", func(t *testing.T) {
		assert.False(t, payment.VerifySignature(secret, orderID, paymentID, ""))
	})
}

func TestTrimReceipt(t *testing.T) {
	t.Run("short receipts pass through", func(t *testing.T) {
		assert.Equal(t, "booking_abc", payment.TrimReceipt("booking_abc"))
	})

	t.Run("long receipts are capped at 40 chars", func(t *testing.T) {
		long := "booking_" + strings.Repeat("a", 64)
		got := payment.TrimReceipt(long)
		assert.Len(t, got, 40)
		assert.Equal(t, long[:40], got)
	})

	t.Run("exactly 40 chars is unchanged", func(t *testing.T) {
		exact := strings.Repeat("x", 40)
		assert.Equal(t, exact, payment.TrimReceipt(exact))
	})
}
