// cubepuzzle - interactive 3x3x3 puzzle cube for the terminal.
package main

import (
	"github.com/SeamusWaldron/cubepuzzle/internal/cli"
)

func main() {
	cli.Execute()
}
