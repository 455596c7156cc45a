package writer

// MemWriter captures container bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteDocument replaces the captured bytes with a copy of buf.
func (w *MemWriter) WriteDocument(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
