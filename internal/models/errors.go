package models

import (
	"errors"
)

var (
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidType      = errors.New("invalid type")
)
