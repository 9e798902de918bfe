package service

import "fmt"

var (
	ErrInvalidLevel = fmt.Errorf("invalid log level")
)
