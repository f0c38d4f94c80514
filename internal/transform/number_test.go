package transform

import "testing"

func TestParagraphNumberer_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only unchanged",
			input:    "  \n\n \t ",
			expected: "  \n\n \t ",
		},
		{
			name:     "plain text unchanged",
			input:    "baris satu\n  baris dua",
			expected: "baris satu\n  baris dua",
		},
		{
			name:     "existing number replaced and plain numeral kept",
			input:    "3. Question...? \n\n12) Plain note\n\n(2) Another...",
			expected: "1. Question...? \n\n12) Plain note\n\n2. Another...",
		},
		{
			name:     "parenthesis enumeration without space",
			input:    "5)Soal...",
			expected: "1. Soal...",
		},
		{
			name:     "unnumbered paragraph is left-trimmed",
			input:    "   Soal tanpa nomor...",
			expected: "1. Soal tanpa nomor...",
		},
		{
			name:     "whitespace-only line separates paragraphs",
			input:    "Satu...\n   \t\nDua...",
			expected: "1. Satu...\n\n2. Dua...",
		},
		{
			name:     "leading and trailing blank runs become empty paragraphs",
			input:    "\n\n  \nApa...\n\n\n",
			expected: "\n\n1. Apa...\n\n",
		},
		{
			name:     "trailing newline preserved",
			input:    "Soal...\n",
			expected: "1. Soal...\n",
		},
		{
			name: "sample document",
			input: "Komponen model simulasi yang digunakan oleh entitas untuk menyelesaikan\n" +
				"tugasnya adalah...\n\n" +
				"a Atribut\n\nb Keadaan\n\n" +
				"Tujuan utama dari tahap Analisis Hasil dan Dokumentasi adalah...\n\n" +
				"a Mengumpulkan data input\n\nb Memastikan model dibangun dengan benar",
			expected: "1. Komponen model simulasi yang digunakan oleh entitas untuk menyelesaikan\n" +
				"tugasnya adalah...\n\n" +
				"a Atribut\n\nb Keadaan\n\n" +
				"2. Tujuan utama dari tahap Analisis Hasil dan Dokumentasi adalah...\n\n" +
				"a Mengumpulkan data input\n\nb Memastikan model dibangun dengan benar",
		},
	}

	n := &ParagraphNumberer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := n.Transform(tt.input)
			if got != tt.expected {
				t.Errorf("Transform(%q)\ngot:  %q\nwant: %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParagraphNumberer_Idempotent(t *testing.T) {
	t.Parallel()

	n := &ParagraphNumberer{}
	once := n.Transform("7. Satu...\n\nteks\n\n(9) Dua...")
	twice := n.Transform(once)

	if once != twice {
		t.Errorf("renumbering numbered output changed it:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestParagraphNumberer_Stats(t *testing.T) {
	t.Parallel()

	n := &ParagraphNumberer{}
	_, stats := n.TransformWithStats("Satu...\n\nteks\n\nDua...")

	want := Stats{Questions: 2}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestStripLeadingNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"1. Soal", "Soal"},
		{"10)   Soal", "Soal"},
		{"(3) Soal", "Soal"},
		{"  4.Soal", "Soal"},
		{"Soal 5. lagi", "Soal 5. lagi"},
		{"a. Soal", "a. Soal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := stripLeadingNumber(tt.input); got != tt.want {
				t.Errorf("stripLeadingNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
