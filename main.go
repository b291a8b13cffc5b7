package main

import "ghostscrub/cmd"

func main() {
	cmd.Execute()
}
