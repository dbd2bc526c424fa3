// Command cursorctl describes and probes backend memory cursors.
package main

import "github.com/mesh-intelligence/cursors/internal/cli"

func main() {
	cli.Execute()
}
