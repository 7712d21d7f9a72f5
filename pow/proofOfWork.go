package pow

import (
	"errors"
	"hash-ledger-go/blocks"
	"log"
	"math"
	"math/big"
)

const (
	MAX_NONCE uint64 = math.MaxUint64

	// a sha3-256 digest has 64 hex characters
	MAX_DIFFICULTY byte = 64
)

// ErrNonceExhausted is returned when the nonce search hits its limit
// before finding a qualifying hash. Unreachable at the default limit
// for any realistic difficulty.
var ErrNonceExhausted = errors.New("pow: nonce space exhausted")

// ProofOfWork searches for a nonce whose block hash has at least
// `difficulty` leading zero hex characters, expressed as the hash
// being below 1 << (256 - 4*difficulty).
type ProofOfWork struct {
	block      *blocks.Block
	difficulty byte
	target     *big.Int
	limit      uint64
}

func NewProofOfWork(b *blocks.Block, difficulty byte) *ProofOfWork {
	return NewBoundedProofOfWork(b, difficulty, MAX_NONCE)
}

// NewBoundedProofOfWork caps the nonce search at limit; Run returns
// ErrNonceExhausted if no qualifying nonce exists below it.
func NewBoundedProofOfWork(
	b *blocks.Block, difficulty byte, limit uint64,
) *ProofOfWork {
	if difficulty > MAX_DIFFICULTY {
		difficulty = MAX_DIFFICULTY
	}
	target := big.NewInt(1)
	target.Lsh(target, uint(256-4*uint64(difficulty)))
	pow := ProofOfWork{
		block:      b,
		difficulty: difficulty,
		target:     target,
		limit:      limit,
	}
	return &pow
}

// Run increments the block's nonce from 0, recomputing the hash until
// it meets the target, and stores the winning nonce and hash on the
// block. Difficulty 0 succeeds immediately at nonce 0.
func (pow *ProofOfWork) Run() (uint64, []byte, error) {
	var hashInt big.Int

	log.Printf("mining block at height %d\n", pow.block.Index)
	pow.block.Nonce = 0
	for {
		hash := pow.block.ComputeHash()
		hashInt.SetBytes(hash)
		if hashInt.Cmp(pow.target) == -1 {
			pow.block.Hash = hash
			log.Printf("mined hash:\n%x\n", hash)
			return pow.block.Nonce, hash, nil
		}
		if pow.block.Nonce >= pow.limit {
			return pow.block.Nonce, nil, ErrNonceExhausted
		}
		pow.block.Nonce++
	}
}

// Validate recomputes the hash from the stored nonce and checks it
// against the target. It does not touch the block.
func (pow *ProofOfWork) Validate() bool {
	var hashInt big.Int
	hash := pow.block.ComputeHash()
	hashInt.SetBytes(hash)
	return hashInt.Cmp(pow.target) == -1
}
