package blocks

import (
	"bytes"
	"encoding/hex"
	"hash-ledger-go/common"

	"golang.org/x/crypto/sha3"
)

// GenesisPreviousHash is the previous-hash sentinel carried by the
// first block of a chain, which has no predecessor to link to.
var GenesisPreviousHash = []byte("0")

type Block struct {
	Index        uint64
	Timestamp    int64
	Data         []byte
	PreviousHash []byte
	Hash         []byte
	Nonce        uint64
}

// NewBlock builds a block with nonce 0 and its hash computed from the
// given fields as-is. Inputs are not validated; the payload is opaque.
func NewBlock(
	index uint64, timestamp int64, data []byte, previousHash []byte,
) *Block {
	block := Block{
		Index:        index,
		Timestamp:    timestamp,
		Data:         data,
		PreviousHash: previousHash,
		Nonce:        0,
	}
	block.Hash = block.ComputeHash()
	return &block
}

// ComputeHash digests the current field values, nonce included. The
// stored Hash is left untouched; a settled block satisfies
// bytes.Equal(b.Hash, b.ComputeHash()).
func (b *Block) ComputeHash() []byte {
	data := bytes.Join(
		[][]byte{
			common.ToHex(b.Index),
			b.PreviousHash,
			common.ToHex(b.Timestamp),
			b.Data,
			common.ToHex(b.Nonce),
		},
		nil,
	)
	hash := sha3.Sum256(data)
	return hash[:]
}

func (b *Block) HashHex() string {
	return hex.EncodeToString(b.Hash)
}

func (b *Block) PreviousHashHex() string {
	return hex.EncodeToString(b.PreviousHash)
}
