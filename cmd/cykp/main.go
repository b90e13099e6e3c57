package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}
