// Command lvlarea finds the largest finite Manhattan region of a point set.
package main

import (
	"os"

	"github.com/katalvlaran/lvlarea/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
