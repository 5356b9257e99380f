// Package main provides the Acorn CLI.
package main

import (
	"fmt"
	"os"

	"github.com/acorn-ml/acorn/internal/serialization"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Acorn %s\n", version)
			return
		case "inspect":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: acorn inspect <file>")
				os.Exit(2)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "acorn: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Acorn - dense and sparse arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  inspect <file>    Print a serialized array's header")
}

func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h, err := serialization.ReadHeader(f)
	if err != nil {
		return err
	}
	fmt.Printf("format version: %d\n", h.Version)
	fmt.Printf("kind:           %s\n", h.KindString())
	fmt.Printf("element type:   %s\n", h.DType)
	fmt.Printf("compressed:     %t\n", h.Flags&serialization.FlagCompressed != 0)
	fmt.Printf("checksummed:    %t\n", h.Flags&serialization.FlagChecksum != 0)
	return nil
}
