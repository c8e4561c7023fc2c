package main

import "obotab/cmd/obotab-cli/cmd"

func main() {
	cmd.Execute()
}
