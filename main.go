package main

import "github.com/weglide/flugfeld/cmd"

func main() {
	cmd.Execute()
}
