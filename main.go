package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/davlem/parsat/cmd"
)

func main() {
	cmd.Execute()
}
