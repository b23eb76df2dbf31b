package main

import "github.com/lepinkainen/booktracker/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
