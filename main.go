package main

import "github.com/taigrr/vlist/internal/cmd"

func main() {
	cmd.Execute()
}
