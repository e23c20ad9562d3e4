package main

import (
	"github.com/dgfem/biharm/cmd"
)

func main() {
	cmd.Execute()
}
