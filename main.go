package main

import "github.com/tropics/poolscape/cmd"

func main() {
	cmd.Start()
}
