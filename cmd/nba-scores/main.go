package main

import "github.com/pfrederiksen/nba-scores/internal/cli"

func main() {
	cli.Execute()
}
