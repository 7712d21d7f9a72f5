package main

import (
	"hash-ledger-go/cli"
	"log"
)

func main() {
	err := cli.Run()
	if err != nil {
		log.Panic(err)
	}
}
