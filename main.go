package main

import "github.com/parkstruct/gofooting/cmd"

func main() {
	cmd.Execute()
}
