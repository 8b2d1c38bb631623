package main

import "studysaga/cmd/saga/root"

func main() {
	root.Execute()
}
