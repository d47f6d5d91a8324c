package main

import "cvbuilder/cmd/cvbuilder-cli/cmd"

func main() {
	cmd.Execute()
}
