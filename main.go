package main

import (
	"log"

	"github.com/apiforge/tsgen/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
