package blocks

import (
	"bytes"
	"testing"
)

func TestNewBlockHashesImmediately(t *testing.T) {
	b := NewBlock(1, 1234, []byte("payload"), []byte("prev"))

	if b.Nonce != 0 {
		t.Fatalf("fresh block nonce = %d, want 0", b.Nonce)
	}
	if !bytes.Equal(b.Hash, b.ComputeHash()) {
		t.Fatal("stored hash does not match recomputation")
	}
}

func TestComputeHashDeterministic(t *testing.T) {
	a := NewBlock(3, 99, []byte("same"), []byte("link"))
	b := NewBlock(3, 99, []byte("same"), []byte("link"))

	if !bytes.Equal(a.ComputeHash(), b.ComputeHash()) {
		t.Fatal("identical fields hashed to different digests")
	}
}

func TestComputeHashCoversEveryField(t *testing.T) {
	base := func() *Block {
		return NewBlock(1, 1234, []byte("payload"), []byte("prev"))
	}

	mutations := map[string]func(*Block){
		"index":        func(b *Block) { b.Index = 2 },
		"timestamp":    func(b *Block) { b.Timestamp = 4321 },
		"data":         func(b *Block) { b.Data = []byte("other") },
		"previousHash": func(b *Block) { b.PreviousHash = []byte("x") },
		"nonce":        func(b *Block) { b.Nonce = 7 },
	}

	for name, mutate := range mutations {
		b := base()
		before := b.ComputeHash()
		mutate(b)
		if bytes.Equal(before, b.ComputeHash()) {
			t.Errorf("mutating %s did not change the hash", name)
		}
	}
}

func TestStoredHashUntouchedByMutation(t *testing.T) {
	b := NewBlock(1, 1234, []byte("payload"), []byte("prev"))
	stored := append([]byte(nil), b.Hash...)

	b.Data = []byte("tampered")

	if !bytes.Equal(b.Hash, stored) {
		t.Fatal("stored hash changed without an explicit recompute")
	}
	if bytes.Equal(b.Hash, b.ComputeHash()) {
		t.Fatal("tampered block still satisfies its stored hash")
	}
}
