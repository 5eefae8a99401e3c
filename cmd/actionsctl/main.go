package main

import (
	"os"

	"github.com/idpkit/actionsctl/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
