package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeDirForFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "logs", "nested", "txdump.log")
	require.NoError(t, MakeDirForFile(filePath, "logger"))

	f, err := os.Create(filePath)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// Already existing directory is fine.
	require.NoError(t, MakeDirForFile(filePath, "logger"))
}

func TestMakeDirForFile_NotADirectory(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(filePath, []byte{}, os.ModePerm))

	err := MakeDirForFile(filepath.Join(filePath, "sub", "txdump.log"), "logger")
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not create dir for logger")
}
