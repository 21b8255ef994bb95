// Command hanoi solves the Tower of Hanoi by state-space search.
//
//	hanoi                       interactive menu (5 disks by default)
//	hanoi solve -n 3 -s astar   non-interactive solve
//	hanoi gui                   animated viewer
//	hanoi config init           write hanoi.yaml with the defaults
package main

import (
	"os"

	"hanoi-search/internal/cli"
)

func main() {
	a := cli.NewApp()
	root := a.RootCommand()
	root.AddCommand(newGUICommand(a))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
