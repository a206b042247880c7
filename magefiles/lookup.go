//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Courses runs one course lookup with the built binary.
func Courses(query string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "courses", "--query", query)
}

// Universities runs one university lookup with the built binary.
func Universities(country string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "universities", "--country", country)
}
