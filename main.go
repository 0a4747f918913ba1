// ptimport imports Nessus scan exports into a PlexTrac instance.
//
// Build: go build -o ptimport ./
// Usage: ptimport --hostname https://acme.plextrac.com -f scan.nessus
package main

import "github.com/plextrac/ptimport/cmd"

func main() {
	cmd.Execute()
}
