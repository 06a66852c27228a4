package main

import (
	"github.com/HZAU-dl/fisheye/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
