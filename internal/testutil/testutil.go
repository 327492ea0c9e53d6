// Package testutil holds helpers shared by the test suites
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenTest is a test case whose output is compared against a golden file.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches the
// expected output in testdata/<name>.golden. A nil output asserts that no
// golden file exists for the case. Run with -update to regenerate.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, goldenFileName := tc.Output()

	if output == nil {
		f := filepath.Join("testdata", goldenFileName+".golden")
		if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	// golden files are checked in with LF endings
	g.Assert(t, goldenFileName, bytes.ReplaceAll(output, []byte("\r\n"), []byte("\n")))
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
