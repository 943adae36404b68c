// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Both argbind CUE inputs, schema files and the CLI config file, go through the same
// three steps: compile the embedded schema, unify it with the user document, then
// validate and decode into a Go struct. Failures carry the file name and a JSON-style
// path to the offending field.
//
//	//go:embed schemafile_schema.cue
//	var schemaBytes []byte
//
//	res, err := cueutil.ParseAndDecode[Document](schemaBytes, data, "#Schema",
//		cueutil.WithFilename("app.cue"))
package cueutil
