// Package main provides an interactive terminal demo of the profile
// controller.
//
// Usage:
//
//	profiledemo run [--panes N] [--rows N] [--refresh-delay D]
//	profiledemo config
//	profiledemo version
//
// Persistent flags:
//
//	--profile PATH     YAML transition configuration
//	--debug-log PATH   append debug output to PATH
//
// Every flag can also be set with a PROFILEDEMO_ environment variable, for
// example PROFILEDEMO_PANES=5, or in a profiledemo.yaml settings file in the
// working directory.
package main

const version = "0.1.0"

func main() {
	Execute()
}
