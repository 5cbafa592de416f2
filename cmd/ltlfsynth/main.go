// Command ltlfsynth decides realizability of LTLf synthesis problems stored
// as YAML and plays the resulting strategy against an environment on stdin.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ltlfsynth/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err = newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
