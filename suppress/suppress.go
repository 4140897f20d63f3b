package suppress

import "errors"

// Ignored runs body and discards errors matching any of targets.
//
// A match is decided with errors.Is, so wrapped errors match their sentinel.
// Both ways of failing are covered: an error returned by body, and an error
// value body panics with (see Raise). A matching error yields nil and
// execution continues after Ignored. A non-matching error is returned
// unchanged; a non-matching panic is re-raised with its original value.
//
//	err := suppress.Ignored(func() error {
//	    return os.Remove(lockFile)
//	}, fs.ErrNotExist)
func Ignored(body func() error, targets ...error) error {
	return ignored(body, func(err error) bool {
		return matchesAny(err, targets)
	})
}

// IgnoredAs is Ignored matching by error type instead of by value: an error
// is discarded when errors.As finds an E in its chain.
//
//	err := suppress.IgnoredAs[*fs.PathError](func() error { ... })
func IgnoredAs[E error](body func() error) error {
	return ignored(body, func(err error) bool {
		var target E
		return errors.As(err, &target)
	})
}

// Ignore is the value form of Ignored for an error already at hand.
func Ignore(err error, targets ...error) error {
	if matchesAny(err, targets) {
		return nil
	}
	return err
}

func ignored(body func() error, match func(error) bool) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if raised, ok := r.(error); ok && match(raised) {
			err = nil
			return
		}
		panic(r)
	}()

	if err = body(); err != nil && match(err) {
		return nil
	}
	return err
}

func matchesAny(err error, targets []error) bool {
	if err == nil {
		return false
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
