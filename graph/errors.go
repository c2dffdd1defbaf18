// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel error categories shared by all graph implementations.
var (
	// ErrUnsupported indicates the graph does not offer the requested capability.
	ErrUnsupported = errors.New("graph: operation not supported")

	// ErrInvalidArgument indicates an argument the graph cannot accept.
	ErrInvalidArgument = errors.New("graph: invalid argument")
)
