// Package config provides the settings of ropedit.
//
// Settings come from three sources, each overriding the one before:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← ROPEDIT_TAB_SIZE, ROPEDIT_THEME, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/ropedit/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//   - watcher: File watching for external changes
//
// # File Format
//
// A TOML config file looks like this:
//
//	[editor]
//	tabSize = 4
//	indentWithSpace = true
//	maxUndo = 1000
//	pageOverlap = 2
//
//	[ui]
//	theme = "monokai"
//
//	[ui.font]
//	advance = 1
//	lineHeight = 1
//
//	[files]
//	watch = true
//
//	[logging]
//	level = "debug"
//	file = "/tmp/ropedit.log"
//
//	[keys]
//	Save = ["Ctrl-S", "F2"]
//
// YAML files with the same structure are accepted when the file name ends
// in .yaml or .yml.
//
// # Basic Usage
//
//	s, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := s.ApplyEnv(""); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(s.TabSize)
package config
