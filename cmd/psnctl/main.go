package main

import (
	"psn-emulator/internal/cli"
)

func main() {
	cli.Execute()
}
