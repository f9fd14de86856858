package main

import "github.com/cuckoo711/notepreview/cmd"

func main() {
	cmd.Execute()
}
