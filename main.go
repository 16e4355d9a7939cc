package main

import (
	"os"

	"github.com/BojanStipic/micko-peg/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
