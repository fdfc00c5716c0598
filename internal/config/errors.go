package config

import "errors"

var (
	ErrOutOfRange    = errors.New("config: value out of range")
	ErrUnknownPreset = errors.New("config: unknown preset")
)
