//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target when mage runs without arguments
var Default = Build

// Build compiles the learnlanguage binary
func Build() error {
	return sh.RunV("go", "build", "-o", "learnlanguage", "./cmd/learnlanguage")
}

// Test runs the full test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint vets the source tree
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOBIN
func Install() error {
	return sh.RunV("go", "install", "./cmd/learnlanguage")
}

// All lints, tests, and builds
func All() {
	mg.SerialDeps(Lint, Test, Build)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("learnlanguage")
}
