package commands

import "fmt"

var version = "dev"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Printf("pwscore %s\n", version)
	return nil
}
