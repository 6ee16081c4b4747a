// Command cmerkle builds commutative Merkle trees over sets of items,
// and prints or checks membership proofs for them.
package main

import (
	"os"

	"github.com/gordian-engine/cmerkle/cmd/cmerkle/internal/cmd"
)

func main() {
	if err := cmd.NewRootCommand(cmd.Options{}).Execute(); err != nil {
		os.Exit(1)
	}
}
