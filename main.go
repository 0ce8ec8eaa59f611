package main

import "github.com/jsphweid/guitarnotes/cmd"

func main() {
	cmd.Execute()
}
