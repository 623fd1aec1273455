// Package main provides the phonenorm command-line tool.
package main

import "phonenorm/internal/cli"

func main() {
	cli.Execute()
}
