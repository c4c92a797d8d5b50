package conformance

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite *TestSuite
	Test  TestCase
}

// Load reads every suite named by paths. A directory contributes each
// .yaml file beneath it.
func Load(paths ...string) ([]LoadedTest, error) {
	var loaded []LoadedTest
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		var tests []LoadedTest
		if info.IsDir() {
			tests, err = LoadDir(path)
		} else {
			tests, err = LoadFile(path)
		}
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, tests...)
	}
	return loaded, nil
}

// LoadDir walks dir and loads all test cases, naming each by its path
// relative to dir
func LoadDir(dir string) ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		tests, err := LoadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}
		for i := range tests {
			tests[i].File = filepath.ToSlash(relPath)
		}
		loaded = append(loaded, tests...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// LoadFile parses a single YAML file and returns all test cases
func LoadFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	suite := &TestSuite{}
	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	tests := make([]LoadedTest, 0, len(suite.Tests))
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{
			File:  path,
			Suite: suite,
			Test:  test,
		})
	}
	return tests, nil
}
