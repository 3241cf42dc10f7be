package comment

import (
	"log"
	"strings"
)

// Reporter collects generation notices so they can be printed together
// once a run finishes instead of interleaved with other output.
type Reporter struct {
	verbose bool
	notices []string
}

// initialize this if you want to use it at the start of the program
var reporter *Reporter

func EnableReporter(verbose bool) {
	reporter = &Reporter{verbose: verbose}
}

func WriteAll() {
	if reporter != nil {
		reporter.Flush()
	}
}

// Add appends a new notice to the notices slice.
// The message is the main notice, and additionalInfo is a list of
// optional lines that will be printed below the main notice.
// Informational notices are dropped unless the reporter is verbose.
func (r *Reporter) Add(header, message string, additionalInfo ...string) {
	if r == nil {
		return
	}
	if header == InfoHeader && !r.verbose {
		return
	}

	b := strings.Builder{}
	b.WriteString(header)
	b.WriteByte(':')
	b.WriteByte(' ')
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	r.notices = append(r.notices, b.String())
}

// Flush logs all the collected notices and clears the reporter.
func (r *Reporter) Flush() {
	if r == nil {
		return
	}

	for _, n := range r.notices {
		log.Println(n)
	}
	r.notices = []string{}
}
