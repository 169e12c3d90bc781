// Command rosterdiff compares an Extranet CSV export with an Operoo XML
// spreadsheet export and prints the discrepancy report.
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/JonMunkholm/rosterdiff/internal/core/rules" // Register all rules
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
