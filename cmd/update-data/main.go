package main

import "github.com/qwerty111-ops/power4-college-football-betting/internal/cli"

func main() {
	cli.Execute()
}
