package config

import "github.com/pkg/errors"

// InvalidParameterError reports an option whose value lies outside its
// documented domain (spec.md §7's InvalidParameter(name, reason)).
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return "config: invalid parameter " + e.Name + ": " + e.Reason
}

func invalid(name, reason string) error {
	return errors.WithStack(&InvalidParameterError{Name: name, Reason: reason})
}
