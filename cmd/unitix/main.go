package main

import "github.com/aalvaropc/unitix/internal/cli"

func main() {
	cli.Execute()
}
