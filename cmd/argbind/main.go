// SPDX-License-Identifier: MPL-2.0

// Command argbind checks schema files and binds argument vectors against them.
//
//	argbind check app.cue
//	argbind parse app.cue -- build --release -j 8 x86
//	argbind parse app.toml --line 'serve --mode prod' --format json
//	argbind tokens -- -vv --name=x -- -y
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:]))
}
