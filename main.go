package main

import "github.com/xvierd/vessel-cli/cmd"

func main() {
	cmd.Execute()
}
