package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mgutz/ansi"

	"github.com/pwscore/pwscore/strength"
)

var labelColors = map[strength.Label]func(string) string{
	strength.Weak:       ansi.ColorFunc("red+b"),
	strength.Medium:     ansi.ColorFunc("yellow+b"),
	strength.Strong:     ansi.ColorFunc("green"),
	strength.VeryStrong: ansi.ColorFunc("green+b"),
}

type Printer struct {
	out   io.Writer
	color bool
}

func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{
		out:   out,
		color: color,
	}
}

func (p *Printer) Print(result strength.Result) error {
	label := string(result.Label)
	if p.color {
		label = labelColors[result.Label](label)
	}

	fmt.Fprintf(p.out, "Score:     %d/100\n", result.Score)
	fmt.Fprintf(p.out, "Strength:  %s\n", label)
	fmt.Fprintf(p.out, "Length:    %d characters\n", result.Length)
	fmt.Fprintf(p.out, "Entropy:   %.2f bits (effective: %.2f bits)\n", result.EntropyBits, result.EffectiveEntropyBits)
	fmt.Fprintf(p.out, "Estimated crack time: %s\n", result.CrackTime)

	if len(result.Feedback) > 0 {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Suggestions:")

		for _, suggestion := range result.Feedback {
			fmt.Fprintf(p.out, "  - %s\n", suggestion)
		}
	}

	return nil
}

func (p *Printer) PrintJSON(result strength.Result) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(result)
}
