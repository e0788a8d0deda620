package main

import (
	"fmt"
	"os"

	"bookworm.backend/pkg/crypto"
)

// genhash prints a bcrypt hash for the given password. Handy for seeding
// staff accounts directly in the database.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}

	hash, err := crypto.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "genhash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
