package main

import "github.com/guildandgrove/website/internal/cli"

func main() {
	cli.Execute()
}
