package errfactory_test

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/errfactory"
)

func BenchmarkDefine(b *testing.B) {
	def := errfactory.Definition{Code: "NOT_FOUND", Message: "{resource} {id} not found", Status: 404}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = errfactory.Define(def)
	}
}

func BenchmarkNew_Fixed(b *testing.B) {
	f := errfactory.MustDefine(errfactory.Definition{Code: "INTERNAL", Message: "internal error", Status: 500})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = f.New()
	}
}

func BenchmarkNew_Params(b *testing.B) {
	params := errfactory.Params{"resource": "user", "id": "42"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = NotFound.New(params)
	}
}

func BenchmarkNew_MixedOptions(b *testing.B) {
	cause := errors.New("cause")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = NotFound.New("{x} happened", errfactory.Fields{"x": "something", "cause": cause})
	}
}

func BenchmarkInterpolate(b *testing.B) {
	params := errfactory.Params{"a": "hello", "b": "world"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errfactory.Interpolate("{a} and {b}", params)
	}
}

func BenchmarkMatch(b *testing.B) {
	err := NotFound.New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = NotFound.Match(err)
	}
}
