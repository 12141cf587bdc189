package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pwscore/pwscore/commands"
)

func main() {
	parser := flags.NewParser(&commands.PwScore, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			fmt.Print(flagErr.Message)
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
