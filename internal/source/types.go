package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, REPL).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM is set when a UTF-8 byte order mark was stripped on load.
	FileHadBOM
	// FileHasCRLF is set when the content contains CRLF line endings.
	// Offsets are kept as-is; line lookup strips the trailing '\r'.
	FileHasCRLF
	// FileTranscoded is set when UTF-16 input was converted to UTF-8.
	FileTranscoded
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// Text is Content as a string, converted once so that token texts can
	// be substrings of it without further copies.
	Text string
	// LineIdx holds the byte offset where each line starts.
	// LineIdx[0] is always 0; every other entry is one past a '\n'.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
