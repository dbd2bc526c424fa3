//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "cursorctl"
	binaryDir  = "bin"
	cmdDir     = "./cmd/cursorctl"
	versionVar = "github.com/mesh-intelligence/cursors/internal/cli.Version"
)

// ldflags stamps the version from `git describe`, falling back to the
// default compiled into the binary.
func ldflags() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return ""
	}
	return fmt.Sprintf("-X %s=%s", versionVar, strings.TrimPrefix(v, "v"))
}

// Build compiles the cursorctl binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if f := ldflags(); f != "" {
		args = append(args, "-ldflags", f)
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Clean removes build artifacts and the default device data directory.
func Clean() error {
	for _, dir := range []string{binaryDir, ".cursors-db"} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Probe builds cursorctl and runs every scenario against every backend.
func Probe() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "probe")
}
