// Package loader produces the RecordSet for a save run.
//
// Drafts come from one of two sources, chosen explicitly by the caller:
//   - An input file holding a mapping with optional x_posts, threads_posts
//     and satire_images keys. Files ending in .json are decoded with
//     encoding/json; anything else is parsed with gopkg.in/yaml.v3.
//   - The built-in sample drafts from the model package.
//
// Errors are reported through the ErrNotFound, ErrMalformed and ErrNoSource
// sentinels so that callers can use errors.Is to decide how to report them.
package loader
