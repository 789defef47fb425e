package port

// SourceFile is one uploaded document.
type SourceFile struct {
	Name string
	Data []byte
}

// TextExtractor pulls plain text out of uploaded documents.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
	ExtractAll(files []SourceFile) (string, error)
}
