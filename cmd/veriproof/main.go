package main

import "github.com/attestia/veriproof/internal/cli"

func main() {
	cli.Execute()
}
