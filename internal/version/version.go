/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package version exposes build version information.
package version

// Version is the current version of Open Hours.
// Set at build time via ldflags:
//
//	-X github.com/friendsincode/openhours/internal/version.Version=X.Y.Z
var Version = "0.3.0"
