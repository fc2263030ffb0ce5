// Package output delivers rendered bytes to their destination: standard
// output, or a file written through types.FS.
package output
