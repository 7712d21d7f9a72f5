package cli

import (
	"flag"
	"fmt"
	"hash-ledger-go/blockchain"
	"os"
)

func printUsage() {
	fmt.Println()
	fmt.Println("usage:")
	fmt.Println(" demo -d DIFFICULTY (run the tamper demonstration)")
	fmt.Println()
}

func validateArgs() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
}

func Run() error {
	validateArgs()
	demoCmd := flag.NewFlagSet("demo", flag.ExitOnError)

	demoDifficulty := demoCmd.Uint(
		"d", uint(blockchain.DEFAULT_DIFFICULTY),
		"leading zero hex characters required of mined hashes",
	)

	var err error
	switch os.Args[1] {
	case "demo":
		err = demoCmd.Parse(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	fmt.Println()
	if demoCmd.Parsed() {
		err = runDemo(byte(*demoDifficulty))
	}
	return err
}
