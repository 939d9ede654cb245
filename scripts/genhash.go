package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for local seed accounts.
func main() {
	passwords := map[string]string{
		"employer@example.com":  "employer-demo-1",
		"jobseeker@example.com": "jobseeker-demo-1",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
