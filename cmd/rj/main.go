package main

import "rapjournal/cmd/rj/root"

func main() {
	root.Execute()
}
