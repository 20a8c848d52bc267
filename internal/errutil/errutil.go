// Package errutil contains helpers to deal with errors.
package errutil

import "fmt"

// RunAndSetError runs f and stores its error in err, wrapped with msg.
// err is left untouched if it already holds an error, so that the
// original failure is not shadowed by a cleanup failure.
//
// It's meant to be used with defer:
//
//	defer errutil.RunAndSetError(resp.Body.Close, &err, "close response body")
func RunAndSetError(f func() error, err *error, msg string) {
	e := f()
	if e == nil || *err != nil {
		return
	}
	*err = fmt.Errorf("%s: %w", msg, e)
}
