package main

import "github.com/tinyshell/tinysh/cmd"

func main() {
	cmd.Execute()
}
