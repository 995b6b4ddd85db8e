package main

import "github.com/Gabrielgibbson/Smart-Asset-Tracking-System/cmd"

func main() {
	cmd.Execute()
}
