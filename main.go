package main

import (
	"github.com/simkit/seqtools/internal/cmd"
)

var version string // set by goreleaser

func init() {
	cmd.Version = version
}

func main() {
	cmd.Main()
}
