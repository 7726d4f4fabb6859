// Package cli provides the interactive PlantVision command-line client.
//
// It wires configuration, the local cache, the API services and a REPL.
// On start it tries to resume the stored session, then reads commands
// until the user exits. Analyses run in the background: "analyze" returns
// at once and the result is announced when ready; starting another one
// abandons the first.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command set.
package cli
