package main

import "github.com/papapumpkin/ndm/cmd"

func main() {
	cmd.Execute()
}
