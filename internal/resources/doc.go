// Package resources locates the resource directory shipped next to the moka
// binary and the interpreter support scripts inside it.
package resources
