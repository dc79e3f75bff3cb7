package main

import "github.com/tranvictor/lottery/cmd"

func main() {
	cmd.Execute()
}
