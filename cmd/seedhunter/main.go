package main

import "github.com/Amr-9/SeedHunter/cmd/seedhunter/cmd"

func main() {
	cmd.Execute()
}
