package cli

import (
	"fmt"
	"hash-ledger-go/blockchain"
	"hash-ledger-go/blocks"
	"hash-ledger-go/payments"
	"hash-ledger-go/pow"
	"hash-ledger-go/wallets"
	"time"

	"github.com/pterm/pterm"
)

const DEMO_WALLET_ID = "demo"

// runDemo builds a small chain from signed payments, shows it
// validating, then tampers with a stored block behind the chain's back
// and shows validation catching it.
func runDemo(difficulty byte) error {
	chain := blockchain.NewBlockchain(difficulty)

	alice, err := wallets.NewWallet(DEMO_WALLET_ID, "alice")
	if err != nil {
		return err
	}
	bob, err := wallets.NewWallet(DEMO_WALLET_ID, "bob")
	if err != nil {
		return err
	}

	if err := appendPayment(chain, alice, 100); err != nil {
		return err
	}
	if err := appendPayment(chain, bob, 250); err != nil {
		return err
	}

	pterm.DefaultSection.Println("freshly mined chain")
	printVerdict(chain)
	dumpChain(chain)

	// mutate a stored payload directly, bypassing AddBlock
	tampered := chain.Blocks()[1]
	tampered.Data = []byte(`{"user":"mallory","amount":1000000}`)

	pterm.DefaultSection.Println("after tampering with block 1")
	printVerdict(chain)
	dumpChain(chain)

	return nil
}

func appendPayment(
	chain *blockchain.Blockchain, wallet *wallets.Wallet, amount uint64,
) error {
	payment := payments.Payment{
		InnerData: payments.PaymentData{
			User:      wallet.Address(),
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		},
	}
	if err := wallet.Sign(&payment); err != nil {
		return err
	}

	data, err := payment.Bytes()
	if err != nil {
		return err
	}

	candidate := blocks.NewBlock(
		chain.Height()+1, time.Now().Unix(), data, nil,
	)
	return chain.AddBlock(candidate)
}

func printVerdict(chain *blockchain.Blockchain) {
	if chain.IsValid() {
		pterm.Success.Println("chain is valid")
	} else {
		pterm.Error.Println("chain is NOT valid")
	}
}

func dumpChain(chain *blockchain.Blockchain) {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	for _, block := range chain.Blocks() {
		body := pterm.Sprintf(
			"timestamp: %d\nnonce:     %d\nhash:      %s\nprev:      %s\ndata:      %s\n",
			block.Timestamp,
			block.Nonce,
			block.HashHex(),
			block.PreviousHashHex(),
			string(block.Data),
		)
		if block.Index == 0 {
			body += "proof:     genesis (unmined)"
		} else {
			miner := pow.NewProofOfWork(block, chain.Difficulty())
			body += pterm.Sprintf("proof:     %t", miner.Validate())
		}
		title := pterm.LightYellow(fmt.Sprintf("| BLOCK %d |", block.Index))
		fmt.Println(pbox.WithTitle(title).WithTitleTopCenter().Sprint(body))
	}
}
