package main

import (
	"github.com/custodia-labs/textlens-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
