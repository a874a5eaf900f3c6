// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package brand centralizes product identity strings.
package brand

const (
	// Name is the human-facing product name.
	Name = "Wiretop"

	// LowerName is the lowercase name used for paths and tags.
	LowerName = "wiretop"

	// BinaryName is the name of the installed binary.
	BinaryName = "wiretop"

	// ConfigFileName is the default configuration file name.
	ConfigFileName = "wiretop.hcl"
)

// Version is set at build time via -ldflags.
var Version = "dev"
