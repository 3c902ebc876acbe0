package main

import (
	"os"

	"github.com/sverker84/fmeflowclient/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
