// Package cmake renders scan results as a CMakeLists.txt.
//
// Rendering is pure: it builds the whole file in memory from a Project and
// a filesystem.Result and never touches the disk.
package cmake

import (
	"strings"

	"github.com/Ginoko/auto-generate-CMakeLists/internal/filesystem"
	"github.com/Ginoko/auto-generate-CMakeLists/internal/language"
)

// MinimumVersion is the cmake_minimum_required version every file declares
const MinimumVersion = "2.8.0"

// FileName is the name CMake expects for a project descriptor
const FileName = "CMakeLists.txt"

// IncludeHeader introduces the include-directory section
const IncludeHeader = "# include directories"

const sourceIndent = "    "

// Project is what the renderer needs to know about the project itself
type Project struct {
	Name     string
	Language language.Standard
}

// StandardVariable returns the CMake variable that selects the language
// standard, e.g. CMAKE_CXX_STANDARD.
func StandardVariable(f language.Family) string {
	if f == language.CXX {
		return "CMAKE_CXX_STANDARD"
	}
	return "CMAKE_C_STANDARD"
}

// Render produces the CMakeLists.txt text. Sections always appear in the
// same order, separated by blank lines, and are emitted even when empty.
// The project name is written verbatim.
func Render(p Project, r *filesystem.Result) string {
	if r == nil {
		r = &filesystem.Result{}
	}

	sections := []string{
		"cmake_minimum_required(VERSION " + MinimumVersion + ")",
		"project(" + p.Name + ")",
		"set(" + StandardVariable(p.Language.Family()) + " " + p.Language.Version() + ")",
		includeSection(r.IncludeDirs),
		sourceSection(p.Name, r.SourceFiles),
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func includeSection(dirs []string) string {
	var b strings.Builder
	b.WriteString(IncludeHeader)
	for _, dir := range dirs {
		b.WriteString("\ninclude_directories(")
		b.WriteString(dir)
		b.WriteString(")")
	}
	return b.String()
}

func sourceSection(target string, files []string) string {
	var b strings.Builder
	b.WriteString("add_executable(")
	b.WriteString(target)
	for _, f := range files {
		b.WriteString("\n")
		b.WriteString(sourceIndent)
		b.WriteString(f)
	}
	b.WriteString("\n)")
	return b.String()
}
