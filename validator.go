package prefid

import (
	"fmt"

	"github.com/cohesivestack/valgo"
)

// Validator returns a valgo validator that passes when s parses as the
// identifier type T.
func Validator[T Identifier, PT IdentifierPtr[T]](s string, nameAndTitle ...string) valgo.Validator {
	var zero T
	return valgo.String(s, nameAndTitle...).
		Passing(func(v string) bool {
			_, err := Parse[T, PT](v)
			return err == nil
		}, fmt.Sprintf("Must be a valid %s ID", zero.Prefix()))
}
