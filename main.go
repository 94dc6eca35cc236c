/*
Copyright (c) 2026 plancheck authors
*/

package main

import "github.com/plancheck/plancheck/cmd"

func main() {
	cmd.Execute()
}
