// Package text provides the font-file layer the renderer's text stack is
// built on: parsing TTF/OTF data, extracting glyph outlines as vector
// segments, and detecting color-font tables (COLR/CPAL, CBDT, sbix).
//
// The separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//   - OutlineExtractor: Glyph id to vector outline, y-down
//   - ColorFont: Optional interface for fonts carrying color tables
//
// Shaping itself lives a level up (package timerfont drives
// go-text/typesetting); this package only answers questions about the
// font file.
//
// # Example usage
//
//	source, err := text.NewFontSource(fontBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	extractor := text.NewOutlineExtractor()
//	outline, err := extractor.ExtractOutline(source.Parsed(), gid, upem)
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered for alternative implementations:
//
//	// Register a custom parser
//	text.RegisterParser("myparser", myCustomParser)
//
//	// Use the custom parser
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
//
// This design allows:
//   - Easy migration to different font libraries
//   - Pure Go implementations without external dependencies
//   - Custom font formats or optimized parsers
package text
