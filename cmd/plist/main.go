// Command plist loads lists from YAML or JSON documents, transforms them with
// persistent list operations and prints the result.
package main

import (
	"os"

	"src.elv.sh/plist/pkg/buildinfo"
	"src.elv.sh/plist/pkg/plist"
	"src.elv.sh/plist/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, plist.Program{})))
}
