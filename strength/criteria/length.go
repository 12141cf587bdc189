package criteria

import (
	"fmt"
	"unicode/utf8"
)

type minLength struct {
	n int
}

func MinLength(n int) Criterion {
	return &minLength{
		n: n,
	}
}

func (c *minLength) Met(password string) bool {
	return utf8.RuneCountInString(password) >= c.n
}

func (c *minLength) Suggestion() string {
	return fmt.Sprintf("Increase length to at least %d characters", c.n)
}
