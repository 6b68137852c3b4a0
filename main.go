package main

import "github.com/vibast-solutions/ms-go-tasks/cmd"

func main() {
	cmd.Execute()
}
