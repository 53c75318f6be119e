// Package sink holds the output ends of the pipeline: a console sink
// that emits rendered lines immediately, and a file sink that appends
// whole batches to a rotating file set.
//
// The file set lives under one directory as filename.extension (the
// current file) plus filename.extension<N> for rotated files, where a
// larger N means an older file. When a flush pushes the current file
// past its size ceiling the sink closes it, evicts the oldest file if
// the set is at capacity, and shifts every suffix up by one; a fresh
// current file appears lazily on the next flush.
//
// Neither sink locks anything: the worker loop is the single consumer
// and the only caller, so ownership is single-threaded by construction.
package sink
