// Package pipeline runs the steps of a save in sequence.
//
// A save is processed through four stages: ensuring the output directory
// exists, naming the output files, writing the Markdown document and
// writing the TSV table. Each stage is implemented as a Step that receives
// the current SaveJob and can update it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. The document-before-table order is visible in one place
// 2. It provides consistent error handling and logging across steps
// 3. The job records which steps completed, so a failure after the
// document was written can be reported accurately
//
// Steps run one at a time and the pipeline stops at the first error.
package pipeline
