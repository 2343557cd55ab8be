package errfactory

// Coded is the structural contract shared by every error a family produces.
//
// Any error with a string code and an int status satisfies it, whichever
// package built the value. IsCoded, GetCode and GetStatus are looser: they
// also recognise errors whose Status returns another integer or
// floating-point type, such as int64 or uint16.
type Coded interface {
	error

	// Code returns the stable code identifying the error family.
	Code() string

	// Status returns the numeric status attached to the family.
	Status() int
}
