// Package model defines the value types shared by the mycli packages.
//
// There is no persisted state. Every value here lives for a single
// invocation: the exit codes the CLI reports, the error types that carry
// them, and the outcome of a delegated child process.
package model
