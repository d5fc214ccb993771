// Package prefid provides strongly typed identifiers that wrap a UUID and are
// rendered as "<prefix>-<uuid>", e.g. "user-3fa85f64-5717-4562-b3fc-2c963f66afa6".
//
// An identifier kind is declared with a marker type that returns the prefix
// and a struct type that embeds ID parameterized by that marker:
//
//	type userPrefix struct{}
//
//	func (userPrefix) Prefix() string { return "user" }
//
//	type UserID struct {
//		prefid.ID[userPrefix]
//	}
//
// Each kind is a distinct Go type, so a UserID cannot be used where an OrderID
// is expected, while all kinds share the same encoding, parsing and errors.
//
// Prefixes are not validated. A prefix that contains the separator makes the
// encoding ambiguous for kinds whose prefixes extend one another, so prefixes
// should be chosen to not contain '-'.
package prefid

import (
	"encoding/hex"
	"slices"
	"strings"

	"github.com/google/uuid"
)

const (
	// Separator joins the prefix and the UUID.
	Separator    = '-'
	SeparatorLen = 1
	// UUIDStringLen is the length of a canonical hyphenated UUID string.
	UUIDStringLen = 36
)

// EncodedLen returns the length of an identifier's textual encoding for the
// given prefix.
func EncodedLen(prefix string) int {
	return len(prefix) + SeparatorLen + UUIDStringLen
}

// Prefixer is implemented by marker types to bind a prefix to an identifier
// kind. Prefix must return the same value on every call.
type Prefixer interface {
	Prefix() string
}

// Identifier is implemented by every identifier kind.
type Identifier interface {
	Prefixer
	UUID() uuid.UUID
	String() string
	IsZero() bool
}

// IdentifierPtr constrains *T to an identifier that can be constructed by this
// package. It is satisfied by any struct that embeds ID.
type IdentifierPtr[T any] interface {
	*T
	Identifier
	setUUID(u uuid.UUID)
}

// ID is a UUID bound to the prefix returned by P. The zero value wraps the nil
// UUID. IDs are comparable and compare equal when their UUIDs are equal.
type ID[P Prefixer] struct {
	uuid uuid.UUID
}

// Prefix returns the prefix of the identifier kind.
func (id ID[P]) Prefix() string {
	var p P
	return p.Prefix()
}

// UUID returns the wrapped UUID.
func (id ID[P]) UUID() uuid.UUID {
	return id.uuid
}

// IsZero reports whether the identifier wraps the nil UUID.
func (id ID[P]) IsZero() bool {
	return id.uuid == uuid.Nil
}

// String returns the textual encoding "<prefix>-<uuid>".
func (id ID[P]) String() string {
	var sb strings.Builder
	prefix := id.Prefix()
	sb.Grow(EncodedLen(prefix))
	sb.WriteString(prefix)
	sb.WriteByte(Separator)
	var buf [UUIDStringLen]byte
	encodeUUID(buf[:], id.uuid)
	sb.Write(buf[:])
	return sb.String()
}

func (id *ID[P]) setUUID(u uuid.UUID) {
	id.uuid = u
}

func (id ID[P]) appendText(b []byte) []byte {
	b = slices.Grow(b, EncodedLen(id.Prefix()))
	b = append(b, id.Prefix()...)
	b = append(b, Separator)
	n := len(b)
	b = b[:n+UUIDStringLen]
	encodeUUID(b[n:], id.uuid)
	return b
}

// FromUUID wraps u in the identifier type T.
func FromUUID[T Identifier, PT IdentifierPtr[T]](u uuid.UUID) T {
	var id T
	PT(&id).setUUID(u)
	return id
}

// New creates a new instance of the specified identifier type from a random
// UUID. It panics if the UUID cannot be generated.
func New[T Identifier, PT IdentifierPtr[T]]() T {
	return FromUUID[T, PT](uuid.New())
}

// Parse parses a string representation of an identifier into the specified
// identifier type. It returns an error tagged with ErrTagInvalidPrefix or
// ErrTagInvalidUUID when s is not a valid encoding.
func Parse[T Identifier, PT IdentifierPtr[T]](s string) (T, error) {
	var id T
	u, perr := parse(PT(&id).Prefix(), s)
	if perr != nil {
		return id, perr.tagged()
	}
	PT(&id).setUUID(u)
	return id, nil
}

// MustParse parses a string representation of an identifier into the
// specified identifier type and panics if it cannot be parsed.
func MustParse[T Identifier, PT IdentifierPtr[T]](s string) T {
	id, err := Parse[T, PT](s)
	if err != nil {
		panic(err)
	}
	return id
}

func parse(prefix string, s string) (uuid.UUID, *parseError) {
	// The byte after the prefix must be the separator so that "user" does not
	// match "user2-...".
	if !strings.HasPrefix(s, prefix) || len(s) <= len(prefix) || s[len(prefix)] != Separator {
		return uuid.Nil, newInvalidPrefixError(prefix, s)
	}

	u, err := uuid.Parse(s[len(prefix)+SeparatorLen:])
	if err != nil {
		return uuid.Nil, newInvalidUUIDError(err)
	}

	return u, nil
}

// encodeUUID writes the canonical form of u to dst, which must hold
// UUIDStringLen bytes.
func encodeUUID(dst []byte, u uuid.UUID) {
	hex.Encode(dst, u[:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:], u[10:])
}
