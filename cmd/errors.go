package cmd

import "errors"

var errPositiveNumber = errors.New("must be a positive number")
