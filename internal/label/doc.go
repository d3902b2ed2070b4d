// Package label holds the fixed-language text used in draftsaver output.
//
// A Set contains every heading, field name and status line the tool
// prints. Two sets exist: Japanese (the default, matching the drafts the
// tool was built for) and English. Sets are chosen by BCP 47 tag through
// golang.org/x/text/language so that tags such as "ja-JP" or "en-US" resolve
// to the closest set.
package label
