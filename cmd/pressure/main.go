// Command pressure solves valve-release scans in single- or dual-actor mode.
//
//	pressure single input.txt
//	pressure dual --workers 4 < input.txt
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
