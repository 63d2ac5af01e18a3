package main

import "github.com/joshuanunn/algorithms-unlocked/cmd/aubench/cmd"

func main() {
	cmd.Execute()
}
