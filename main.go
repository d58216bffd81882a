package main

import "github.com/WillyV3/pilotprogress/cmd/root"

func main() {
	root.Execute()
}
