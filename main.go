// Package main is the entry point for the d1shell application.
// It provides an interactive SQL shell for Cloudflare D1 databases
// by delegating statement execution to the wrangler CLI.
package main

import (
	"d1shell/cli/cmd"
)

func main() {
	cmd.Execute()
}
