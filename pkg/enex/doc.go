// Package enex decodes ENEX note-export archives.
//
// An archive is an XML container holding notes and base64-encoded binary
// attachments. Parse streams the archive and hands each decoded Note to a
// caller-supplied callback, one at a time, in archive order. Interpreting
// the note content markup is delegated to an injected MarkupParser so the
// decoder itself stays free of any DOM machinery.
package enex
