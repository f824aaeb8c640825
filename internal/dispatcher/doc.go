// Package dispatcher parses input lines into commands and drives their
// execution.
//
// Each line is tokenized on whitespace; the first token selects a
// registered command spec, the rest are arguments captured verbatim.
// A successful dispatch constructs exactly one command, executes it and
// pushes it onto the history stack. Unrecognized words, missing
// required arguments and failed executions construct or record nothing
// beyond a diagnostic.
package dispatcher
