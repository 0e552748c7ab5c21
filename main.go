package main

import "github.com/itszrong/evacplan/cmd"

func main() {
	cmd.Execute()
}
