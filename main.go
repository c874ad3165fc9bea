package main

import (
	"os"

	"bojackquotes/pkg/cli"

	"github.com/charmbracelet/log"
)

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
