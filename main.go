package main

import "github.com/rskv-p/strie/cmd"

func main() {
	cmd.Execute()
}
