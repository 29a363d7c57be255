// SPDX-License-Identifier: MIT

package kernel

import "errors"

// ErrInvalidScale indicates a non-positive kernel scale.
var ErrInvalidScale = errors.New("kernel: scale must be > 0")
