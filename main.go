package main

import "github.com/ledgerline/sfin/cmd"

func main() {
	cmd.Execute()
}
