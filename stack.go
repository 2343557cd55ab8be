package errfactory

import "runtime"

const maxStackDepth = 32

// Frame is one entry of a captured stack trace.
type Frame struct {
	Function string
	File     string
	Line     int
}

// callers captures the stack starting skip frames above its caller.
func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

func framesOf(pcs []uintptr) []Frame {
	if len(pcs) == 0 {
		return nil
	}

	out := make([]Frame, 0, len(pcs))
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return out
}
