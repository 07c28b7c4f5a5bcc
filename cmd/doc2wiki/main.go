// Command doc2wiki converts a MindForger documentation repository into a
// GitHub wiki repository.
//
//	# Convert using the default checkouts under ~/p/mindforger/git
//	doc2wiki
//
//	# Convert explicit roots
//	doc2wiki ~/src/mindforger-documentation ~/src/mindforger.wiki
//
//	# Preview the converted wiki
//	doc2wiki serve ~/src/mindforger.wiki
package main

import "os"

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
