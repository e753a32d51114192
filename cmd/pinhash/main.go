// Command pinhash prints the bcrypt hash of a clock-in PIN so it can be
// pasted into the employee_pin field of the Employees collection when
// onboarding an employee.
//
// Usage:
//
//	pinhash [-cost N] <pin>
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/zanda/offday-portal/internal/utils"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: pinhash [-cost N] <pin>")
	}

	hash, err := utils.HashPin(flag.Arg(0), *cost)
	if err != nil {
		log.Fatalf("hash pin: %v", err)
	}
	fmt.Println(hash)
}
