// Package main provides the moletag CLI for defining chemical mixtures and
// computing their canonical composition tags.
package main

func main() {
	Execute()
}
