package valgoutil

import (
	"go/token"

	"github.com/cohesivestack/valgo"
)

// GoIdentifierValidator passes when ident is a Go identifier that is not a
// keyword.
func GoIdentifierValidator(ident string, nameAndTitle ...string) *valgo.ValidatorString[string] {
	return valgo.String(ident, nameAndTitle...).Passing(func(ident string) bool {
		return token.IsIdentifier(ident)
	}, "must be a valid Go identifier")
}

// ImportPathValidator passes when path is a non empty import path without
// spaces or quotes.
func ImportPathValidator(path string, nameAndTitle ...string) valgo.Validator {
	return valgo.String(path, nameAndTitle...).Not().Blank().Passing(func(path string) bool {
		for _, r := range path {
			if r == ' ' || r == '"' || r == '\\' || r == '`' {
				return false
			}
		}
		return true
	}, "must be a valid import path")
}

func NonEmptySliceValidator[T any](items []T, nameAndTitle ...string) valgo.Validator {
	return valgo.Any(items, nameAndTitle...).Passing(func(v any) bool {
		return len(v.([]T)) > 0
	}, "{{title}} must not be empty")
}
