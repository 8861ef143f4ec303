package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret, payload string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

func TestRazorpayEnabled(t *testing.T) {
	if NewRazorpayService("", "", "", nil, nil).Enabled() {
		t.Error("service enabled without credentials")
	}
	if !NewRazorpayService("rzp_test_key", "secret", "", nil, nil).Enabled() {
		t.Error("service disabled with credentials")
	}
}

func TestVerifySignature(t *testing.T) {
	svc := NewRazorpayService("rzp_test_key", "key-secret", "", nil, nil)

	good := sign("key-secret", "order_abc|pay_xyz")
	if !svc.verifySignature("order_abc", "pay_xyz", good) {
		t.Error("valid signature rejected")
	}
	if svc.verifySignature("order_abc", "pay_xyz", sign("wrong-secret", "order_abc|pay_xyz")) {
		t.Error("signature from wrong secret accepted")
	}
	if svc.verifySignature("order_other", "pay_xyz", good) {
		t.Error("signature for another order accepted")
	}

	unconfigured := NewRazorpayService("", "", "", nil, nil)
	if unconfigured.verifySignature("order_abc", "pay_xyz", good) {
		t.Error("signature accepted without a key secret")
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)

	svc := NewRazorpayService("k", "s", "webhook-secret", nil, nil)
	if !svc.VerifyWebhookSignature(body, sign("webhook-secret", string(body))) {
		t.Error("valid webhook signature rejected")
	}
	if svc.VerifyWebhookSignature(body, sign("other", string(body))) {
		t.Error("forged webhook signature accepted")
	}

	// Without a configured secret the check is skipped
	open := NewRazorpayService("k", "s", "", nil, nil)
	if !open.VerifyWebhookSignature(body, "") {
		t.Error("webhook rejected with verification disabled")
	}
}
