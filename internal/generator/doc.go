// Package generator runs a cmakegen pass: it validates the run options,
// scans the project tree, renders CMakeLists.txt and writes it.
//
// # Usage
//
//	std, _ := language.New("c++", "17")
//	gen, err := generator.New(generator.Options{
//	    Root:     "./myproject",
//	    Language: std,
//	})
//	if err != nil {
//	    return err // ErrProjectRootNotFound, language.ErrInvalidLanguageConfig
//	}
//	report, err := gen.Run(ctx)
//
// # Writes
//
// The output is always fully overwritten. The new content is written to a
// temporary file next to the target and renamed over it, so a failed write
// never leaves a half-written CMakeLists.txt behind.
package generator
