package main

import "github.com/notargets/tetqual/cmd"

func main() {
	cmd.Execute()
}
