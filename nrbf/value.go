// Package nrbf decodes the wire format produced by the .NET Remoting
// BinaryFormatter (the Microsoft .NET Binary Format: Data Structures) into
// a plain, language-neutral value tree.
//
// Deserialize is the single entry point. It fully buffers its input,
// resolves every forward reference, and either returns a complete Value or
// fails outright; there is no partial result and no streaming variant.
package nrbf

// Value is the projected result of a decode: nil, bool, one of the sized
// integer or float types, string, []Value, or map[string]Value. It is
// defined as an alias over any so callers can type-switch on the concrete
// Go types without an intermediate wrapper type.
type Value = any
