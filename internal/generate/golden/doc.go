// Package golden holds the checked-in output of the generator for the
// definitions used by the generate tests. Building it type-checks the
// generated code against the errfactory API.
//
//go:generate go run ../../../cmd/errgen -i definitions.yaml -o errors_gen.go
package golden
