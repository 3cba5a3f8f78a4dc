package main

import "github.com/TykTechnologies/graphql-syntax/cmd"

func main() {
	cmd.Execute()
}
