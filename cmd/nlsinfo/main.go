package main

import "github.com/gonls/nls/cmd/nlsinfo/cmd"

func main() {
	cmd.Execute()
}
