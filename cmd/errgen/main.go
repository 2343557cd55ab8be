// Errgen generates typed constructors for error definitions.
//
// It reads a YAML, JSON or CUE definitions file and writes a Go file that
// declares one errfactory family per definition, a params struct for every
// parameterized message and New/Wrap constructors.
//
// Usage:
//
//	# Write to a file
//	errgen --input errors.yaml --output errors_gen.go --package api
//
//	# From a go:generate directive (package defaults to $GOPACKAGE)
//	//go:generate go run github.com/jmgilman/go/errfactory/cmd/errgen -i errors.cue -o errors_gen.go
//
//	# Print to stdout
//	errgen -i errors.json -p api
package main

func main() {
	Execute()
}
