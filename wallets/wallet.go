package wallets

import (
	"crypto/ed25519"
	"fmt"
	"hash-ledger-go/common"
	"hash-ledger-go/keys"
	"hash-ledger-go/payments"
	"os"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/sha3"
)

const (
	KEYPAIR_FILE = "%s_%skeypair.key"
)

type Wallet struct {
	keyPair *keys.KeyPair
}

// NewWallet loads the keypair file for (id, name) if one exists,
// otherwise generates a fresh keypair and writes it out so the same
// wallet comes back next run.
func NewWallet(id string, name string) (*Wallet, error) {
	keyFile := fmt.Sprintf(KEYPAIR_FILE, id, name)
	if common.ExistFile(keyFile) {
		f, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, err
		}
		key, err := common.Decode[keys.KeyPair](f)
		if err != nil {
			return nil, err
		}
		return &Wallet{keyPair: key}, nil
	}

	key, err := keys.GenerateKey()
	if err != nil {
		return nil, err
	}
	enc, err := common.Encode(key)
	if err != nil {
		return nil, err
	}
	err = os.WriteFile(keyFile, enc, 0644)
	if err != nil {
		return nil, err
	}
	return &Wallet{keyPair: key}, nil
}

func (w *Wallet) PublicKey() ed25519.PublicKey {
	return w.keyPair.PublicKey
}

// Address is the base58 form of the hashed public key.
func (w *Wallet) Address() string {
	hash := sha3.Sum256(w.keyPair.PublicKey)
	return base58.Encode(hash[:])
}

// Sign stamps the wallet's key, signature and hash onto the payment.
func (w *Wallet) Sign(p *payments.Payment) error {
	p.InnerData.PublicKey = w.keyPair.PublicKey

	err := p.ContentsCheck()
	if err != nil {
		return err
	}

	sig := ed25519.Sign(w.keyPair.PrivateKey, p.SigningBytes())
	p.InnerData.Signature = sig

	return p.SealHash()
}
