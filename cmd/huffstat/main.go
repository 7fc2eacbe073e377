package main

import (
	"log"
	"os"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("[huffstat] ")
	log.SetFlags(0)

	if err := newRootCommand().Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
