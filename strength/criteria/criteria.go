package criteria

// Criterion is a single pass/fail check over a candidate password.
type Criterion interface {
	Met(password string) bool
	Suggestion() string
}
