// Package render turns a built tree into output bytes.
//
// The text format draws the familiar tree with box-drawing connectors:
//
//	project/
//	├── src/
//	│   └── main.go
//	└── README.md
//
// The structured formats (json, yaml, xml) serialise the same Document
// shape, and markdown produces a nested bullet list that is rendered for the
// terminal when colour is enabled.
package render
