//go:build mage

package main

import (
	"log"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "schemascript"

func Build() error {
	return sh.RunV("go", "build", "-o", binary, ".")
}

func Lint() error {
	return sh.RunV("golangci-lint", "run")
}

// Generate пересоздает моки.
func Generate() error {
	mg.Deps(Tools.Install)
	return sh.RunV("go", "generate", "./...")
}

func Update() error {
	if err := sh.RunV("go", "get", "-u", "-v"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy", "-v")
}

func Clean() error {
	return sh.Rm(binary)
}

type Test mg.Namespace

func (Test) All() error {
	return sh.RunV("go", "test", "-v", "./...")
}

func (Test) Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=cover.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=cover.out")
}

type Tools mg.Namespace

var tools = []string{
	"github.com/vektra/mockery/v2@v2.26.1",
	"github.com/golangci/golangci-lint/cmd/golangci-lint@v1.52.2",
}

func (Tools) Install() error {
	log.Println("tools: ", tools)

	for _, tool := range tools {
		if err := sh.RunV("go", "install", "-v", tool); err != nil {
			return err
		}
	}
	return nil
}
