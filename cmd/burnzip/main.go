package main

import "github.com/burnzip/client-go/internal/cli"

func main() {
	cli.Execute()
}
