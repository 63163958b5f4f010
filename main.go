package main

import "garment-geek/cmd"

func main() {
	cmd.Execute()
}
