package blockchain

import (
	"bytes"
	"hash-ledger-go/blocks"
	"hash-ledger-go/pow"
	"log"
	"sync"

	"golang.org/x/exp/slices"
)

const (
	// required leading zero hex characters in a mined block's hash
	DEFAULT_DIFFICULTY byte = 4

	GENESIS_TIMESTAMP int64 = 1_600_000_000
)

var genesisData = []byte("genesis")

// Blockchain is a single-writer, in-memory chain anchored by a fixed
// genesis block. The mutex only serializes callers; mining still runs
// synchronously inside AddBlock.
type Blockchain struct {
	sync.Mutex
	blocks     []*blocks.Block
	difficulty byte
}

func NewBlockchain(difficulty byte) *Blockchain {
	bc := Blockchain{
		blocks:     []*blocks.Block{genesisBlock()},
		difficulty: difficulty,
	}
	log.Printf(
		"blockchain starts at\n height: %d\n difficulty: %d\n latest: %x",
		bc.blocks[0].Index, bc.difficulty, bc.blocks[0].Hash,
	)
	return &bc
}

// genesisBlock is fixed and never mined; difficulty does not apply to
// it and IsValid does not revisit it.
func genesisBlock() *blocks.Block {
	return blocks.NewBlock(
		0, GENESIS_TIMESTAMP, genesisData, blocks.GenesisPreviousHash,
	)
}

func (bc *Blockchain) Difficulty() byte {
	return bc.difficulty
}

func (bc *Blockchain) Height() uint64 {
	bc.Lock()
	defer bc.Unlock()
	return bc.blocks[len(bc.blocks)-1].Index
}

func (bc *Blockchain) LatestBlock() *blocks.Block {
	bc.Lock()
	defer bc.Unlock()
	return bc.latest()
}

func (bc *Blockchain) latest() *blocks.Block {
	// never empty: the chain is born with its genesis block
	return bc.blocks[len(bc.blocks)-1]
}

// AddBlock links the candidate to the current tail, mines it at the
// chain's difficulty and appends it. The candidate's PreviousHash is
// overwritten; index, timestamp and payload are taken as-is. This is
// the only operation that grows the chain.
func (bc *Blockchain) AddBlock(candidate *blocks.Block) error {
	bc.Lock()
	defer bc.Unlock()

	candidate.PreviousHash = bc.latest().Hash

	miner := pow.NewProofOfWork(candidate, bc.difficulty)
	if _, _, err := miner.Run(); err != nil {
		return err
	}

	bc.blocks = append(bc.blocks, candidate)
	return nil
}

// IsValid walks the chain from the block after genesis and reports
// whether every block still hashes to its stored hash and links to its
// predecessor's hash. Read-only and idempotent; the first violation
// found decides the result.
func (bc *Blockchain) IsValid() bool {
	bc.Lock()
	defer bc.Unlock()

	for i := 1; i < len(bc.blocks); i++ {
		current := bc.blocks[i]
		previous := bc.blocks[i-1]

		if !bytes.Equal(current.Hash, current.ComputeHash()) {
			return false
		}
		if !bytes.Equal(current.PreviousHash, previous.Hash) {
			return false
		}
	}
	return true
}

// Blocks returns a snapshot of the block sequence. The slice is a
// copy but the blocks are shared, so callers can still mutate stored
// blocks directly, which is exactly the tamper case IsValid exists to
// catch.
func (bc *Blockchain) Blocks() []*blocks.Block {
	bc.Lock()
	defer bc.Unlock()
	return slices.Clone(bc.blocks)
}
