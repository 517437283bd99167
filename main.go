package main

import "github.com/zbiljic/gitcz/cmd"

func main() {
	cmd.Execute()
}
