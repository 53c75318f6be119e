// Package formatter compiles format templates and renders messages with
// them.
//
// A template is literal text interleaved with {...} placeholders. Each
// placeholder holds up to four colon-separated fields:
//
//	{<type>:<length>:<width>:<align>}
//
// where type is one of timestamp, splitter, modules or message
// (case-insensitive), length limits the value (positive keeps the first N
// characters, negative drops the last N), width is the column width the
// value is padded or hard-truncated to, and align is left, center or
// right. Missing or unparsable fields fall back to their defaults
// (length 30, width 30, center) rather than failing the template; an
// unknown type name degrades to the placeholder content as literal text.
// Compilation fails only when the template contains no braces at all.
//
// Rendering captures the timestamp once per message, when the worker
// picks the message up, so it marks receipt time rather than the moment
// the producing call happened.
package formatter
