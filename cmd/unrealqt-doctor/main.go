// unrealqt-doctor - diagnostic companion to the unrealqt framework plugin.
package main

import (
	"os"

	"github.com/GPLgithub/tk-framework-unrealqt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
