package main

import "passvault/cmd/vault/cmd"

func main() {
	cmd.Execute()
}
