package main

import "texttv/cmd"

func main() {
	cmd.Execute()
}
