package errorsUtils

import (
	"fmt"
	"runtime"
)

// WrapPathErr prefixes err with the calling function and line, keeping it unwrappable.
func WrapPathErr(err error) error {
	if err == nil {
		return nil
	}
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
