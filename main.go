package main

import (
	"log"

	"github.com/harishsure007/Jobflowai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
