package main

import "github.com/tessro/cutline/internal/cli"

func main() {
	cli.Execute()
}
