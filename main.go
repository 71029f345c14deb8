package main

import "github.com/vietdv277/smf/cmd"

func main() {
	cmd.Execute()
}
