package main

import "github.com/dmitrymomot/formvalidator/internal/cli"

func main() {
	cli.Execute()
}
