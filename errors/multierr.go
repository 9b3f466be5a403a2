package errors

import "strings"

type multiErr struct {
	base   error
	causes []error
}

func (e *multiErr) Unwrap() []error {
	return e.causes
}

func (e *multiErr) Is(target error) bool {
	return e.base == target
}

func (e *multiErr) Error() string {
	if len(e.causes) == 0 {
		return e.base.Error()
	}
	msgs := make([]string, 0, len(e.causes))
	for _, c := range e.causes {
		msgs = append(msgs, c.Error())
	}
	return e.base.Error() + ": " + strings.Join(msgs, "; ")
}

// Multi tags all causes with base. It returns nil when there is nothing to report.
func Multi(base error, causes []error) error {
	if len(causes) == 0 {
		return nil
	}
	return &multiErr{
		base:   base,
		causes: causes,
	}
}
