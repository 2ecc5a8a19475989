// One-off inspector: prompts for the PIN, unlocks the tag file and prints
// the payload kind and addresses. Never prints secrets.
// Usage: go run ./cmd/tagtool <tag-file>
package main

import (
	"context"
	"fmt"
	"os"

	"tagvault/internal/tag"
	"tagvault/wallet"

	"golang.org/x/term"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: tagtool <tag-file>")
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "stdin is not a terminal: run interactively to enter PIN")
		os.Exit(1)
	}
	fmt.Fprint(os.Stderr, "Enter PIN: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil || len(raw) == 0 {
		fmt.Fprintln(os.Stderr, "failed to read PIN")
		os.Exit(1)
	}
	pin := string(raw)
	clear(raw)

	service := wallet.New(tag.NewStore(os.Args[1]))
	result, err := service.ReadWallet(context.Background(), pin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("kind:     %s\n", result.Kind)
	if result.SolanaAddress != "" {
		fmt.Printf("solana:   %s\n", result.SolanaAddress)
	}
	if result.EthereumAddress != "" {
		fmt.Printf("ethereum: %s\n", result.EthereumAddress)
	}
}
