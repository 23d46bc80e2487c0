package config

import (
	"errors"
)

var (
	ErrFormat = errors.New(f("unknown configuration format, expected .toml or .star"))
)

// ErrConfig locates a configuration error in a file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("key '%v' unknown", string(err))
}

// ErrValue reports a setting with a value of the wrong type.
type ErrValue struct {
	Name  string
	Value string
}

func (err ErrValue) Error() string {
	return f("'%v' has invalid value %v", err.Name, err.Value)
}
