package codec

// Header bytes identify which ISCC component kind a digest belongs to.
// These are fixed, normative single-byte constants; two implementations
// must agree on them or codes of the "same" component diverge.
const (
	HeadMeta                byte = 0x00 // Meta-ID
	HeadContentText         byte = 0x10 // Content-ID-Text (full)
	HeadContentTextPartial  byte = 0x11 // Content-ID-Text (partial/chunk)
	HeadContentImage        byte = 0x20 // Content-ID-Image (full)
	HeadContentImagePartial byte = 0x21 // Content-ID-Image (partial/chunk)
	HeadData                byte = 0x30 // Data-ID
	HeadInstance            byte = 0x40 // Instance-ID
)

// headerName returns a human-readable label for err messages.
func headerName(h byte) string {
	switch h {
	case HeadMeta:
		return "Meta-ID"
	case HeadContentText:
		return "Content-ID-Text"
	case HeadContentTextPartial:
		return "Content-ID-Text (partial)"
	case HeadContentImage:
		return "Content-ID-Image"
	case HeadContentImagePartial:
		return "Content-ID-Image (partial)"
	case HeadData:
		return "Data-ID"
	case HeadInstance:
		return "Instance-ID"
	default:
		return "unknown"
	}
}
