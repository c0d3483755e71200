package main

import "github.com/nikitosruban007/treebuddy/cmd/tb/root"

func main() {
	root.Execute()
}
