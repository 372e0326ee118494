// Stardeck - a personal dashboard for the terminal.
package main

import (
	"github.com/manav03panchal/stardeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Die(err)
	}
}
