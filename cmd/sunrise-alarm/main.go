package main

import "github.com/oshokin/sunrise-alarm/cmd/sunrise-alarm/cmd"

func main() {
	cmd.Execute()
}
