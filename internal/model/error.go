// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

package model

type ErrorReason int

const (
	ErrorReasonValidation ErrorReason = iota
	ErrorReasonProcess
)
