package main

import (
	"github.com/neuromation/hypertune/cmd"
)

func main() {
	cmd.Execute()
}
