// Command pathpack converts SVG path data to and from the pathpack binary format.
//
// Usage:
//
//	pathpack encode [-f factor] [-e error] [-o out] <file|->
//	pathpack encode --text 'M0 0 L10 10 Z'
//	pathpack decode [-f factor] <file|->
//	pathpack inspect <file|->
package main

import "os"

func main() {
	os.Exit(Main())
}
