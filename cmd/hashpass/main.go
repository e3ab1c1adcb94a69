// hashpass generates a bcrypt digest for ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hashpass -password "secret"
package main

import (
	"flag"
	"fmt"
	"os"

	"salon-booking/internal/pkg/password"
)

func main() {
	pass := flag.String("password", "", "password to hash")
	flag.Parse()

	if *pass == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpass -password <password>")
		os.Exit(2)
	}

	digest, err := password.Hash(*pass)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash password:", err)
		os.Exit(1)
	}

	fmt.Println(digest)
}
