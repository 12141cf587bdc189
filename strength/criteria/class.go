package criteria

import "strings"

type charClass struct {
	member     func(rune) bool
	suggestion string
}

func (c *charClass) Met(password string) bool {
	for _, r := range password {
		if c.member(r) {
			return true
		}
	}

	return false
}

func (c *charClass) Suggestion() string {
	return c.suggestion
}

func Uppercase() Criterion {
	return &charClass{
		member:     func(r rune) bool { return r >= 'A' && r <= 'Z' },
		suggestion: "Add at least one uppercase letter",
	}
}

func Lowercase() Criterion {
	return &charClass{
		member:     func(r rune) bool { return r >= 'a' && r <= 'z' },
		suggestion: "Add at least one lowercase letter",
	}
}

func Digit() Criterion {
	return &charClass{
		member:     func(r rune) bool { return r >= '0' && r <= '9' },
		suggestion: "Add at least one digit",
	}
}

func Special(set string) Criterion {
	return &charClass{
		member:     func(r rune) bool { return strings.ContainsRune(set, r) },
		suggestion: "Add at least one special character",
	}
}
