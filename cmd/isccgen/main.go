// Command isccgen computes Instance-ID and Data-ID for files passed on
// the command line. It is a thin demonstration of composing the kernel
// packages; media-type sniffing, image decoding, and full CLI flag
// parsing are out of the kernel's scope (spec.md §1 Non-goals) and are
// intentionally not built here.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/iscc-foundation/goiscc"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s FILE [FILE...]", os.Args[0])
	}

	for _, path := range os.Args[1:] {
		if err := printIDs(path); err != nil {
			log.Printf("%s: %v", path, err)
		}
	}
}

func printIDs(path string) error {
	instanceFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer instanceFile.Close()

	instanceID, err := goiscc.InstanceID(instanceFile)
	if err != nil {
		return fmt.Errorf("instance-id: %w", err)
	}

	dataFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer dataFile.Close()

	dataID, err := goiscc.DataID(dataFile)
	if err != nil {
		return fmt.Errorf("data-id: %w", err)
	}

	fmt.Printf("%s\tinstance=%s\tdata=%s\n", path, instanceID, dataID)
	return nil
}
