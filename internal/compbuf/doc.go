// Package compbuf provides a pooled buffer of path components.
//
// [Buffer] uses push/pop semantics so a path can be rebuilt component by
// component without touching bytes until the result is needed. It backs the
// verbatim merge of push and path normalization.
//
// Use [Get] to obtain a pooled Buffer, and [Put] to return it:
//
//	buf := compbuf.Get()
//	defer compbuf.Put(buf)
//
//	for c := range comps.All() {
//	    buf.Push(c)
//	}
//	out := buf.AppendTo(nil, '\\')
//
// Components alias the buffers they were parsed from; a Buffer never copies
// them, so it must be serialized before those buffers change.
package compbuf
