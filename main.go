package main

import "github.com/sarchlab/ticksim/cmd"

func main() {
	cmd.Execute()
}
