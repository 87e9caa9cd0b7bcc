package main

import "github.com/CandleCat666/DB-dnd-suporter/cmd"

func main() {
	cmd.Execute()
}
