// Package filesystem walks a C/C++ project tree and collects the source
// files and include directories a CMakeLists.txt needs.
//
// # Overview
//
// The scan is a single recursive pre-order pass. In each directory the
// files are classified first, then subdirectories are visited in name
// order, so two scans of an unchanged tree yield identical results.
//
// # Usage
//
//	scanner := filesystem.NewScanner(afero.NewOsFs(), filesystem.ScanOptions{
//	    IgnoreList: filesystem.DefaultIgnoreList,
//	    Separator:  filesystem.SeparatorFor(runtime.GOOS),
//	})
//	result, err := scanner.Scan("/path/to/project")
//
// # Ignore semantics
//
// A directory is skipped when any ignore-list entry occurs anywhere in its
// full path, so ".idea" also excludes "my.idea.backup". Directories that
// cannot be read are reported in Result.Diagnostics and treated as empty.
package filesystem
