package main

import "enrichio/cmd/enrichio-cli/cmd"

func main() {
	cmd.Execute()
}
