// Package main provides the entry point for the draftsaver CLI.
//
// draftsaver turns a file of social media post drafts and satire image
// prompts into a Markdown document and a TSV table, named after the input
// file and the current date.
//
// Usage:
//
//	draftsaver                  # save the built-in sample drafts
//	draftsaver drafts.json      # save drafts read from a file
//	draftsaver -o out -l en drafts.yaml
//
// See --help for all available options.
package main

// main is the entry point for draftsaver.
func main() {
	Execute()
}
