package testutil

import (
	"math/rand"
)

var prefixes = []string{
	"user", "usr", "order", "order_item", "acc", "ns", "op", "msg", "cons", "node",
}

// RandPrefix returns a random prefix from a fixed list of realistic prefixes.
func RandPrefix() string {
	return prefixes[rand.Intn(len(prefixes))]
}

func RandString(length int) string {
	return randFromCharset(length, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")
}

// RandIDLikeString returns a random string that also contains the separator
// and the punctuation accepted by some UUID forms ("-", "{", "}", ":").
func RandIDLikeString(length int) string {
	return randFromCharset(length, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_{}:")
}

func randFromCharset(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// RandBytes returns length random bytes that are not necessarily valid UTF-8.
func RandBytes(length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
	return b
}
