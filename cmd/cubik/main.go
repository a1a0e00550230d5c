// Cubik - CLI application for scrambling, playing and recording NxN cube sessions.
package main

import (
	"github.com/Eggplant203/cubik/internal/cli"
)

func main() {
	cli.Execute()
}
