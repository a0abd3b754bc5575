package types

// TargetName is a single cell read from the sheet column: the raw text
// plus its 1-based data row index. The row index is what ties a name to
// its report row, so it survives even when the text is blank.
type TargetName struct {
	Row  int    `json:"row"`
	Text string `json:"text"`
}

// IsBlank reports whether the cell held no usable text after cleaning.
func (t TargetName) IsBlank() bool {
	return t.Text == ""
}

// Candidate is one file discovered during the source scan.
type Candidate struct {
	// Path is the absolute path to the file.
	Path string `json:"path"`

	// RelPath is the path relative to the scan root, using forward slashes.
	RelPath string `json:"relPath"`

	// Base is the file's base name including extension.
	Base string `json:"base"`

	// Ext is the extension including the leading dot, or "" if none.
	Ext string `json:"ext"`

	// Key is the normalized lookup key the candidate was indexed under.
	Key string `json:"key"`
}
