package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrUsage    = errors.New("invalid usage")
	ErrWritePDF = errors.New("failed to write PDF file")
	ErrListen   = errors.New("failed to listen")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)
