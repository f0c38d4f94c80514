// Package assets provides the built-in sample documents, help texts and
// HTML templates shipped with forso.
//
// # Directory Structure
//
// Assets are embedded at compile time and organized by type:
//
//	samples/
//	└── {mode}.txt       # Example input for a formatting mode (e.g., questions.txt)
//	texts/
//	└── {name}.txt       # Help texts (faq, about)
//	templates/
//	└── {name}.html      # HTML document templates
//
// # Security
//
// Asset names are validated to prevent path traversal: a name never
// contains separators or dots, so it always maps to a single file of the
// expected type.
package assets
