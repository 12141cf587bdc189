package commands

import (
	"github.com/mgutz/ansi"
)

var yellow = ansi.ColorFunc("yellow+b")
