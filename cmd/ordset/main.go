// Command ordset prints a fixed set of integers in ascending order.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ddirect/ordered/internal/collector"
)

func run(w io.Writer) error {
	if _, err := collector.Demo().WriteTo(w); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
