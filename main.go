package main

import (
	"os"

	"github.com/thenoetrevino/kanban/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
