// Package export writes decoded notes to the output directory layout.
//
// Each note becomes a markdown file with a front-matter header under
// notes/, and its attachments land as flat binary files under
// attachments/. Attachment names are percent-escaped so they survive both
// the bracketed header list and naive path concatenation, and attachment
// content is deduplicated by digest: the same bytes may be written to the
// same path any number of times, different bytes never.
package export
