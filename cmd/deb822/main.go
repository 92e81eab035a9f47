package main

import "github.com/deb822/deb822/cmd/deb822/cmd"

func main() {
	cmd.Execute()
}
