package main

import "github.com/fintoolbox/debtpro/cmd"

func main() {
	cmd.Execute()
}
