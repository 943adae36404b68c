// SPDX-License-Identifier: MPL-2.0

// Package argspec is the schema model of the argument engine: arguments, their kinds,
// arities and value types, and the tree of subcommands they live in.
//
// A Schema is built once (with the builder functions, a literal, or pkg/schemafile),
// validated with Validate, and treated as read-only afterwards. The type tags are closed
// enumerations that the coercer switches on; the builder functions are construction-time
// sugar only and leave no trace the binder could observe.
//
//	s := argspec.New("app",
//		argspec.Args(
//			argspec.Flag("verbose", argspec.WithShort('v'), argspec.Global()),
//			argspec.Option("port", argspec.WithType(argspec.TypeInt),
//				argspec.WithEnv("PORT"), argspec.WithDefault("8080")),
//		),
//		argspec.Commands(argspec.New("build", argspec.Args(argspec.Flag("clean")))),
//	)
//	if err := s.Validate(); err != nil {
//		return err // programmer error: fail at startup
//	}
package argspec
