// Command adminctl carries the operator chores for the admin panel: minting
// order IDs, checking password hashes, and clearing stored UI config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
