package main

import "github.com/JackWReid/urlfind/internal/cli"

func main() {
	cli.Execute()
}
