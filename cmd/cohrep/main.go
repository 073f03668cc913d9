// Package main is the entry point for the cohrep CLI tool.
package main

import (
	"github.com/cohrep/cohrep/internal/cmd"
)

func main() {
	cmd.Execute()
}
