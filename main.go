package main

import (
	"data-gate/cmd"
)

func main() {
	cmd.Execute()
}
