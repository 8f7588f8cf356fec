package main

import "rightsteps/cmd"

func main() {
	cmd.Execute()
}
