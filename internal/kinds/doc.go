// Package kinds holds identifier kinds generated by prefidgen. The files are
// also used as golden output by the gen tests.
package kinds

//go:generate go run ../../cmd/prefidgen --package kinds --out . --id user --id order_item
