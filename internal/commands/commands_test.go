package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/config"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/generator"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/language"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/output"
)

// setupProject creates a project tree and makes a fresh working directory
// the current directory. It returns the project root.
func setupProject(t *testing.T, files ...string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "widget")
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(root, 0755))

	chdir(t, t.TempDir())
	return root
}

// run executes the CLI and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

// runWithInput is run with stdin reading from in
func runWithInput(t *testing.T, in string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	restore := output.SetWriters(&stdout, &stderr)
	t.Cleanup(restore)

	cmd := RootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRoot_GeneratesInWorkingDirectory(t *testing.T) {
	root := setupProject(t, "a.c", "lib/x.h")

	stdout, _, err := run(t, root, "--language", "C++", "--std", "17")
	require.NoError(t, err)

	content := readFile(t, config.Default().Output)
	assert.Contains(t, content, "project(widget)")
	assert.Contains(t, content, "set(CMAKE_CXX_STANDARD 17)")
	assert.Contains(t, content, "include_directories(lib)")
	assert.Contains(t, content, "    a.c\n    lib/x.h\n)")
	assert.Contains(t, stdout, "Wrote CMakeLists.txt")
	assert.Contains(t, stdout, "2 source files, 1 include directories")
}

func TestGenerate_Subcommand(t *testing.T) {
	root := setupProject(t, "src/main.cpp")

	_, _, err := run(t, "generate", root, "--name", "engine", "-o", "build.cmake")
	require.NoError(t, err)

	content := readFile(t, "build.cmake")
	assert.Contains(t, content, "project(engine)")
	assert.Contains(t, content, "set(CMAKE_C_STANDARD 90)")
	assert.Contains(t, content, "add_executable(engine\n    src/main.cpp\n)")
}

func TestGenerate_InvalidLanguage(t *testing.T) {
	root := setupProject(t, "a.c")

	_, _, err := run(t, root, "--language", "c++", "--std", "99")
	require.Error(t, err)
	assert.ErrorIs(t, err, language.ErrInvalidLanguageConfig)

	_, statErr := os.Stat(config.Default().Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_MissingRoot(t *testing.T) {
	setupProject(t)

	_, _, err := run(t, "--root", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrProjectRootNotFound)
}

func TestGenerate_DryRunPrintsOnly(t *testing.T) {
	root := setupProject(t, "a.c")

	stdout, _, err := run(t, root, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, stdout, "cmake_minimum_required(VERSION 2.8.0)")
	assert.NotContains(t, stdout, "Wrote")
	_, statErr := os.Stat(config.Default().Output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_ConfigFileAndEnv(t *testing.T) {
	root := setupProject(t, "a.c")
	require.NoError(t, os.WriteFile(config.FileName, []byte("language: c++\nstd: \"14\"\nname: fromfile\n"), 0644))
	t.Setenv("CMAKEGEN_STD", "20")

	_, _, err := run(t, root)
	require.NoError(t, err)

	content := readFile(t, config.Default().Output)
	assert.Contains(t, content, "project(fromfile)")
	assert.Contains(t, content, "set(CMAKE_CXX_STANDARD 20)")
}

func TestGenerate_IgnoreFlagReplacesDefaults(t *testing.T) {
	root := setupProject(t, "a.c", "vendor/v.c", ".idea/i.c")

	_, _, err := run(t, root, "--ignore", "vendor")
	require.NoError(t, err)

	content := readFile(t, config.Default().Output)
	assert.NotContains(t, content, "vendor/v.c")
	assert.Contains(t, content, ".idea/i.c")
}

func TestGenerate_InvalidPlatform(t *testing.T) {
	root := setupProject(t, "a.c")

	_, _, err := run(t, root, "--platform", "amiga")
	var verr *config.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInit_WritesConfig(t *testing.T) {
	setupProject(t)

	stdout, _, err := run(t, "init", "--language", "c++", "--std", "17", "--name", "engine")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created "+config.FileName)

	content := readFile(t, config.FileName)
	assert.Contains(t, content, "language: c++")
	assert.Contains(t, content, "std: \"17\"")
	assert.Contains(t, content, "name: engine")

	_, _, err = run(t, "init")
	assert.Error(t, err, "init must not overwrite without --force")

	_, _, err = run(t, "init", "--force", "--std", "20")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, config.FileName), "std: \"20\"")
}

func TestInit_RejectsInvalidLanguage(t *testing.T) {
	setupProject(t)

	_, _, err := run(t, "init", "--language", "c", "--std", "17")
	assert.ErrorIs(t, err, language.ErrInvalidLanguageConfig)
}

func TestRoot_Version(t *testing.T) {
	stdout, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.0.0")
}

// withTerminal makes the CLI treat stdin as a terminal
func withTerminal(t *testing.T) {
	t.Helper()
	prev := isInteractive
	isInteractive = func(io.Reader) bool { return true }
	t.Cleanup(func() { isInteractive = prev })
}

func TestGenerate_IgnoreEnvReplacesDefaults(t *testing.T) {
	root := setupProject(t, "a.c", "vendor/v.c", "third_party/t.c", ".idea/i.c")
	t.Setenv("CMAKEGEN_IGNORE", "vendor,third_party")

	_, _, err := run(t, root)
	require.NoError(t, err)

	content := readFile(t, config.Default().Output)
	assert.NotContains(t, content, "vendor")
	assert.NotContains(t, content, "third_party")
	assert.Contains(t, content, ".idea/i.c")
	assert.Contains(t, content, "    a.c\n")
}

func TestGenerate_NoSourcesNotice(t *testing.T) {
	root := setupProject(t, "readme.md")

	stdout, _, err := run(t, root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No C/C++ sources found")
	assert.Contains(t, stdout, "0 source files")
}

func TestGenerate_MissingExplicitConfigFails(t *testing.T) {
	root := setupProject(t, "a.c")

	_, _, err := run(t, root, "--config", "custom.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom.yml")
}

func TestGenerate_InvalidLogLevel(t *testing.T) {
	root := setupProject(t, "a.c")

	_, _, err := run(t, root, "--log-level", "loud")
	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, config.KeyLogLevel, verr.Field)
}

func TestGenerate_DebugLogLevelFromConfig(t *testing.T) {
	root := setupProject(t, "a.c")
	require.NoError(t, os.WriteFile(config.FileName, []byte("log-level: debug\n"), 0644))

	_, stderr, err := run(t, root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "scanning")
}

func TestRoot_HelpListsSupportedValues(t *testing.T) {
	stdout, _, err := run(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, ".c .cc .cpp .cu .h")
	assert.Contains(t, stdout, "c: 90 99 11, c++: 98 11 14 17 20")
	assert.Contains(t, stdout, "Language family: c or c++")
}

func TestInit_CreatesExplicitConfigFile(t *testing.T) {
	setupProject(t)

	stdout, _, err := run(t, "init", "--config", "custom.yml", "--std", "99")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created custom.yml")

	assert.Contains(t, readFile(t, "custom.yml"), "std: \"99\"")
	_, statErr := os.Stat(config.FileName)
	assert.True(t, os.IsNotExist(statErr))

	// The file now exists and is read back by later runs
	_, _, err = run(t, "init", "--config", "custom.yml", "--force", "--name", "engine")
	require.NoError(t, err)
	content := readFile(t, "custom.yml")
	assert.Contains(t, content, "std: \"99\"")
	assert.Contains(t, content, "name: engine")
}

func TestInit_ConfirmOverwrite(t *testing.T) {
	setupProject(t)
	withTerminal(t)

	_, _, err := run(t, "init", "--std", "99")
	require.NoError(t, err)

	stdout, _, err := runWithInput(t, "n\n", "init", "--std", "11")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Overwrite "+config.FileName+"?")
	assert.Contains(t, stdout, "Kept existing "+config.FileName)
	assert.Contains(t, readFile(t, config.FileName), "std: \"99\"")

	stdout, _, err = runWithInput(t, "y\n", "init", "--std", "11")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created "+config.FileName)
	assert.Contains(t, readFile(t, config.FileName), "std: \"11\"")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
