package main

import "github.com/chrisdana/peg-game-solver/cmd"

func main() {
	cmd.Execute()
}
