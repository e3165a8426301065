//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Tidy syncs go.mod with the source tree.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Install builds the cargoutil command into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "./cmd/cargoutil")
}

// All runs vet and the test suite.
func All() {
	mg.SerialDeps(Vet, Test)
}
