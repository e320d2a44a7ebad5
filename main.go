package main

import (
	"github.com/charmbracelet/infinite/internal/cmd"
)

func main() {
	cmd.Execute()
}
