package main

import (
	"github.com/atelier-dev/cli/cmd"
)

func main() {
	cmd.Execute()
}
