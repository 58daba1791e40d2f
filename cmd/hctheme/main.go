// hctheme - perceptual colour themes from a single seed colour
//
// hctheme derives light and dark colour themes with guaranteed text
// contrast from one colour, using the HCT colour space.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/hctheme/internal/cli"

func main() {
	cli.Execute()
}
