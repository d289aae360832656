// internal/payment/razorpay.go
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway is the payment port the services depend on. The Razorpay adapter
// is the only implementation outside tests.
type Gateway interface {
	// CreateOrder opens a checkout order for amount in paise and returns the
	// gateway order id.
	CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (string, error)

	// VerifySignature checks the checkout callback signature over
	// "orderID|paymentID".
	VerifySignature(orderID, paymentID, signature string) bool

	// Refund refunds a captured payment in full and returns the refund id.
	Refund(ctx context.Context, paymentID string, amount int64) (string, error)
}

// receiptMaxLen is the gateway's hard cap on receipt strings.
const receiptMaxLen = 40

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  TrimReceipt(receipt),
	}
	if len(notes) > 0 {
		noteData := make(map[string]interface{}, len(notes))
		for k, v := range notes {
			noteData[k] = v
		}
		data["notes"] = noteData
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("creating razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.keySecret, orderID, paymentID, signature)
}

func (g *RazorpayGateway) Refund(ctx context.Context, paymentID string, amount int64) (string, error) {
	data := map[string]interface{}{
		"amount": amount,
	}

	refund, err := g.client.Payment.Refund(paymentID, int(amount), data, nil)
	if err != nil {
		return "", fmt.Errorf("refunding payment %s: %w", paymentID, err)
	}

	refundID, ok := refund["id"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay refund response missing id")
	}
	return refundID, nil
}

// VerifySignature computes the HMAC-SHA256 of "orderID|paymentID" with the
// key secret and compares it to the submitted signature in constant time.
func VerifySignature(keySecret, orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// TrimReceipt caps a receipt string to the gateway limit.
func TrimReceipt(receipt string) string {
	if len(receipt) > receiptMaxLen {
		return receipt[:receiptMaxLen]
	}
	return receipt
}
