// Copyright © 2026 The peek authors

package main

import "github.com/peeklua/peek/cmd"

func main() {
	cmd.Execute()
}
