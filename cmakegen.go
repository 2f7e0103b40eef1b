// Package cmakegen generates minimal CMakeLists.txt files for C/C++ trees.
package cmakegen

// Version is the current cmakegen release.
const Version = "1.0.0"
