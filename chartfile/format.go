// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Formats are the supported chart file encodings.
type Formats int32

const (
	// None is no format.
	None Formats = iota

	// TOML is the default chart file format.
	TOML

	YAML

	JSON
)

var formatNames = [...]string{"None", "TOML", "YAML", "JSON"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ExtToFormat returns the format for the given file extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// FilenameFormat returns the format for the extension of the given filename.
func FilenameFormat(filename string) (Formats, error) {
	return ExtToFormat(filepath.Ext(filename))
}
