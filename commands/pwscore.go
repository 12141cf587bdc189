package commands

type PwScoreCommand struct {
	Check   CheckCommand   `command:"check" description:"Score the strength of a password"`
	Version VersionCommand `command:"version" description:"Displays pwscore version" alias:"V"`
}

var PwScore PwScoreCommand
