package main

import (
	"github.com/c2quant/taflow/pkg/cmd"
)

func main() {
	cmd.Execute()
}
