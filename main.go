package main

import (
	"log"

	"github.com/tsoliveira/batchdist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
