// Package console implements the line oriented operator console.
//
// A Server reads lines from a LineReader, buffers them while the evaluator
// reports incomplete input and hands complete blocks to an EvalFunc. Lines
// starting with a dot invoke named commands; .help, .break and .exit are
// built in, hosts register more with DefineCommand.
package console
