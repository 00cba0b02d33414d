package core

// OutputPath returns the file a scanner generated from grammarFile is written
// to. An explicit outputFile wins; otherwise ".go" is appended to the grammar
// file name.
func OutputPath(grammarFile, outputFile string) string {
	if outputFile != "" {
		return outputFile
	}
	return grammarFile + ".go"
}
