package transform

// Stats reports what a pipeline did to a document.
type Stats struct {
	Questions     int // question paragraphs numbered
	MergedMarkers int // marker lines joined with their description
}

// Transformer is the contract shared by all pipelines.
type Transformer interface {
	Transform(text string) string
	TransformWithStats(text string) (string, Stats)
}

// Compile-time interface implementation checks.
var (
	_ Transformer = (*MarkerReunifier)(nil)
	_ Transformer = (*CompactNormalizer)(nil)
	_ Transformer = (*ParagraphNumberer)(nil)
)
