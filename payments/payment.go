package payments

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"hash-ledger-go/common"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/sha3"
)

// PaymentData is the signed part of a payment: who paid, how much,
// and when. The ledger core never looks inside; payments reach it as
// opaque block payload bytes.
type PaymentData struct {
	User      string
	Amount    uint64
	PublicKey ed25519.PublicKey
	Signature []byte
	Timestamp int64
}

type Payment struct {
	Hash      [32]byte
	InnerData PaymentData
}

func (p *Payment) ContentsCheck() error {
	if p.InnerData.Timestamp == 0 {
		return errors.New("timestamp is zero")
	}
	if p.InnerData.User == "" {
		return errors.New("user is empty")
	}
	if len(p.InnerData.PublicKey) == 0 {
		return errors.New("public key is empty")
	}
	return nil
}

// SigningBytes is the canonical byte form covered by the signature.
func (p *Payment) SigningBytes() []byte {
	return bytes.Join(
		[][]byte{
			[]byte(p.InnerData.User),
			common.ToHex(p.InnerData.Amount),
			common.ToHex(p.InnerData.Timestamp),
		},
		nil,
	)
}

func (p *Payment) Verify() (bool, error) {
	err := p.ContentsCheck()
	if err != nil {
		return false, err
	}
	if len(p.InnerData.Signature) == 0 {
		return false, errors.New("payment is not signed")
	}

	ok := ed25519.Verify(
		p.InnerData.PublicKey, p.SigningBytes(), p.InnerData.Signature,
	)
	return ok, nil
}

// Key is the base58 form of the payment hash, usable as a lookup key.
func (p *Payment) Key() string {
	return base58.Encode(p.Hash[:])
}

// Bytes encodes the whole payment for use as block payload.
func (p *Payment) Bytes() ([]byte, error) {
	return common.Encode(p)
}

// SealHash stamps the payment hash over its encoded inner data. Called
// by the wallet after signing.
func (p *Payment) SealHash() error {
	enc, err := common.Encode(&p.InnerData)
	if err != nil {
		return err
	}
	p.Hash = sha3.Sum256(enc)
	return nil
}
