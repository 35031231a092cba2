// Package json encodes and decodes the JSON form of string values.
//
// On linux, darwin and windows for amd64 and arm64 it is backed by
// [sonic]'s JIT encoder; elsewhere it falls back to encoding/json while
// honouring the same [sonic.Config] switches.
package json
