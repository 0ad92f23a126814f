//go:build tools

// This file pins the build tools of the app.
package tools

import (
	_ "gioui.org/cmd/gogio"
)
