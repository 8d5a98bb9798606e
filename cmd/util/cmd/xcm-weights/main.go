package main

import (
	"github.com/Bullrich/polkadot-fellows-runtimes/cmd/util/cmd/xcm-weights/cmd"
)

func main() {
	cmd.Execute()
}
