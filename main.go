package main

import "github.com/alexiusacademia/gomagnet/cmd"

func main() {
	cmd.Execute()
}
