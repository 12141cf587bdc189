package commands

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"

	"github.com/pwscore/pwscore/prompt"
	"github.com/pwscore/pwscore/report"
	"github.com/pwscore/pwscore/strength"
)

type CheckCommand struct {
	Password    string `short:"p" long:"password" description:"the password to score (visible in shell history and process lists)" value-name:"PASSWORD"`
	Interactive bool   `short:"i" long:"interactive" description:"prompt for the password without echoing it"`
	MinLength   int    `long:"min-length" description:"minimum length criterion" value-name:"N" default:"8"`
	JSON        bool   `long:"json" description:"print the result as JSON"`
	NoColor     bool   `long:"no-color" description:"disable colored output"`
	FailOnWeak  bool   `long:"fail-on-weak" description:"exit with status 3 when the password rates Weak"`
	Debug       bool   `long:"debug" description:"enables debug logging"`
}

func (command *CheckCommand) Execute(args []string) error {
	logger := lager.NewLogger("check")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	if err := command.validate(); err != nil {
		return err
	}

	password, err := command.readPassword()
	if err != nil {
		return err
	}

	evaluator := strength.NewEvaluator(command.MinLength)
	result := evaluator.Evaluate(logger, password)

	printer := report.NewPrinter(os.Stdout, command.useColor())

	if command.JSON {
		err = printer.PrintJSON(result)
	} else {
		err = printer.Print(result)
	}
	if err != nil {
		return err
	}

	if command.FailOnWeak && result.Label == strength.Weak {
		os.Exit(3)
	}

	return nil
}

func (command *CheckCommand) validate() error {
	var result error

	if command.Password != "" && command.Interactive {
		result = multierror.Append(result, errors.New("cannot use --password together with --interactive"))
	}

	if command.MinLength < 1 {
		result = multierror.Append(result, errors.New("--min-length must be at least 1"))
	}

	return result
}

func (command *CheckCommand) readPassword() (string, error) {
	if command.Password != "" {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Passwords given with --password are visible in shell history and process lists.")
		return command.Password, nil
	}

	password, err := prompt.ReadPassword(os.Stdin, os.Stderr)
	if err != nil {
		return "", err
	}

	if password == "" {
		return "", errors.New("no password provided")
	}

	return password, nil
}

func (command *CheckCommand) useColor() bool {
	return !command.NoColor && isatty.IsTerminal(os.Stdout.Fd())
}
