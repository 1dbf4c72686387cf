// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types for the objpool library.

package api

import "fmt"

// ErrInvalidArgument is returned by pool constructors given a negative
// capacity.
var ErrInvalidArgument = fmt.Errorf("invalid argument")
