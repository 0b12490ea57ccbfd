package main

import "github.com/convertly/convertly-api/internal/cli"

func main() {
	cli.Execute()
}
