package main

import (
	"github.com/covmark/covmark/cmd"
)

func main() {
	cmd.Execute()
}
