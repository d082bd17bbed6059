package main

import (
	"os"

	"github.com/Sampath1576/sync-skill-hub-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
