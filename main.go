package main

import "github.com/paisapaglu/paisa/cmd"

func main() {
	cmd.Execute()
}
