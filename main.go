package main

import "pocketbook/cmd"

func main() {
	cmd.Execute()
}
