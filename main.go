package main

import (
	"os"

	"github.com/caffeine-storm/buildinged/cmd"
)

func main() {
	cmd.Main(os.Args)
}
