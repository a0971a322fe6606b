package main

import "github.com/alexiusacademia/bridgebeam/cmd"

func main() {
	cmd.Execute()
}
