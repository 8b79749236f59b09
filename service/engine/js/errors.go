package js

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

var (
	ErrClosed        = errors.New("engine has been closed")
	ErrSettleTimeout = errors.New("timed out waiting for value to settle")
	ErrStalled       = errors.New("promise is pending with no scheduled work")
)

// Rejection wraps the reason of a rejected promise or a generator throw
type Rejection struct {
	Reason goja.Value
}

func (r *Rejection) Error() string {
	if r.Reason == nil || goja.IsUndefined(r.Reason) {
		return "undefined (in promise)"
	}
	return fmt.Sprintf("%v (in promise)", r.Reason.String())
}
