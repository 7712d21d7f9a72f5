package payments

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
)

func signedPayment(t *testing.T) (*Payment, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	p := Payment{
		InnerData: PaymentData{
			User:      "alice",
			Amount:    100,
			PublicKey: pub,
			Timestamp: 1234,
		},
	}
	p.InnerData.Signature = ed25519.Sign(priv, p.SigningBytes())
	if err := p.SealHash(); err != nil {
		t.Fatalf("SealHash failed: %v", err)
	}
	return &p, priv
}

func TestVerifySigned(t *testing.T) {
	p, _ := signedPayment(t)

	ok, err := p.Verify()
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatal("valid signature rejected")
	}
}

func TestVerifyDetectsAmountTampering(t *testing.T) {
	p, _ := signedPayment(t)

	p.InnerData.Amount = 1_000_000
	ok, err := p.Verify()
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("tampered amount passed verification")
	}
}

func TestVerifyRejectsUnsigned(t *testing.T) {
	p := Payment{
		InnerData: PaymentData{
			User:      "alice",
			Amount:    100,
			PublicKey: make(ed25519.PublicKey, ed25519.PublicKeySize),
			Timestamp: 1234,
		},
	}

	if _, err := p.Verify(); err == nil {
		t.Fatal("unsigned payment verified without error")
	}
}

func TestContentsCheck(t *testing.T) {
	p, _ := signedPayment(t)
	if err := p.ContentsCheck(); err != nil {
		t.Fatalf("complete payment rejected: %v", err)
	}

	p.InnerData.User = ""
	if err := p.ContentsCheck(); err == nil {
		t.Fatal("empty user accepted")
	}
}

func TestKeyIsStable(t *testing.T) {
	p, _ := signedPayment(t)

	if p.Key() == "" {
		t.Fatal("sealed payment has empty key")
	}
	if p.Key() != p.Key() {
		t.Fatal("payment key not stable")
	}
}
