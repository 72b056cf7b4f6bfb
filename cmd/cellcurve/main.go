// Command cellcurve extracts serial numbers, discharge capacity and phase
// curves from battery test-report spreadsheets.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.TODO(), RootCmd); err != nil {
		os.Exit(1)
	}
}
