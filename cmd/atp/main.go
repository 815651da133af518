package main

import (
	"audio-transcript/cmd/atp/cmd"
)

func main() {
	cmd.Execute()
}
