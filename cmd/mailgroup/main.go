package main

import "github.com/aalvaropc/mailgroup/internal/cli"

func main() {
	cli.Execute()
}
