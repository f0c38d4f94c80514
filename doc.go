// Package forso reformats exam question text pasted from documents.
//
// Copying questions out of a PDF or word processor scatters the answer
// options over many lines: the letter of an option lands on one line, its
// text two lines further down, and question numbers go missing. forso puts
// the pieces back together and numbers the questions.
//
// # Quick Start
//
// For one-off calls, use the pure functions:
//
//	out := forso.ReunifyMarkers("Apa itu CPU...\na\n\nProsesor\nb\n\nMemori")
//	// out == "1. Apa itu CPU...\na Prosesor\nb Memori"
//
// For applications, create a Formatter. It validates input, reports
// statistics and can render HTML:
//
//	f, err := forso.NewFormatter(forso.WithDefaultMode(forso.ModeQuestions))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := f.Format(ctx, forso.Input{Text: raw, HTML: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Text, res.Questions)
//
// # Modes
//
// Each mode selects one pipeline:
//
//   - ModeQuestions: rejoins lone option letters with their description,
//     groups question stems with their options and numbers the questions
//   - ModeOptions: joins short option tokens ("a", "b.", "(c)") with the
//     next line and collapses blank lines, for option lists without stems
//   - ModeNumber: numbers already well-formed question paragraphs,
//     replacing any existing leading number
//
// A paragraph is a question when it contains the ellipsis "...". Text that
// does not fit the expected layout is never rejected; it passes through in a
// plain form.
//
// # Parallel Processing
//
// Formatter and the pure functions keep no state between calls and are safe
// for concurrent use. ResolvePoolSize gives a worker count for batch jobs.
package forso
