package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	if loader == nil {
		t.Fatal("NewEmbeddedLoader() returned nil")
	}
}

func TestEmbeddedLoader_LoadSample(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		sampleName  string
		wantErr     error
		wantContain string
	}{
		{name: "loads questions sample", sampleName: "questions", wantContain: "tugasnya adalah..."},
		{name: "loads options sample", sampleName: "options", wantContain: "Sumber Daya"},
		{name: "loads number sample", sampleName: "number", wantContain: "Analisis Hasil"},
		{name: "returns ErrSampleNotFound for nonexistent", sampleName: "nonexistent-sample-xyz", wantErr: ErrSampleNotFound},
		{name: "returns ErrInvalidAssetName for empty name", sampleName: "", wantErr: ErrInvalidAssetName},
		{name: "returns ErrInvalidAssetName for path traversal", sampleName: "../texts/faq", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadSample(tt.sampleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadSample(%q) error = %v, want %v", tt.sampleName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadSample(%q) unexpected error: %v", tt.sampleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadSample(%q) content should contain %q", tt.sampleName, tt.wantContain)
			}
			if strings.HasSuffix(got, "\n") {
				t.Errorf("LoadSample(%q) should not end with a newline", tt.sampleName)
			}
		})
	}
}

func TestEmbeddedLoader_LoadText(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	faq, err := loader.LoadText(FAQText)
	if err != nil {
		t.Fatalf("LoadText(%q) unexpected error: %v", FAQText, err)
	}
	if !strings.Contains(faq, "...") {
		t.Error("FAQ should mention the ellipsis marker")
	}

	if _, err := loader.LoadText(AboutText); err != nil {
		t.Errorf("LoadText(%q) unexpected error: %v", AboutText, err)
	}

	if _, err := loader.LoadText("changelog"); !errors.Is(err, ErrTextNotFound) {
		t.Errorf("LoadText(changelog) error = %v, want ErrTextNotFound", err)
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadTemplate(DocumentTemplate)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) unexpected error: %v", DocumentTemplate, err)
	}
	for _, want := range []string{"{{.Title}}", "{{.Body}}", "<!DOCTYPE html>"} {
		if !strings.Contains(got, want) {
			t.Errorf("document template should contain %q", want)
		}
	}

	if _, err := loader.LoadTemplate("cover"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(cover) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestEmbeddedLoader_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*EmbeddedLoader)(nil)
}
