// Package mtree parses the mtree(5) manifest format: a line-oriented
// description of a filesystem tree in which each line names a path and an
// optional set of attributes such as checksums, ownership, permissions,
// type, size and timestamps.
//
// The format is stateful. A /set directive establishes default attributes
// for later entries, and a ".." line pops one component off the virtual
// current directory that relative names resolve against. Reader threads
// that state through one parse session; nothing is shared between
// sessions.
//
// # Quick start
//
//	r := mtree.NewReader(f)
//	for entry, err := range r.Entries() {
//		if err != nil {
//			log.Printf("skipping line: %v", err)
//			continue
//		}
//		fmt.Println(entry)
//	}
//
// Parse errors are per line: a *ParseError identifies one line that could
// not be decoded, and the Reader continues with the next line. The parser
// never repairs malformed records; it rejects them with the offending
// token and position.
//
// Manifests compressed with gzip or zstd (as shipped in Arch Linux
// packages, for example) are decompressed transparently.
package mtree
