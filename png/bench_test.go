package png

import (
	"bytes"
	"fmt"
	"testing"
)

func benchDocument(chunks, payload int) *Document {
	d := New()
	data := bytes.Repeat([]byte{0xA5}, payload)
	for i := range chunks {
		typ := TypeIDAT
		if i%4 == 0 {
			typ = MustParseTypeCode("ruSt")
		}
		d.AppendChunk(NewChunk(typ, data))
	}
	return d
}

func BenchmarkParse(b *testing.B) {
	for _, size := range []int{64, 4096, 65536} {
		buf := benchDocument(32, size).Bytes()
		b.Run(fmt.Sprintf("payload=%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Parse(buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBytes(b *testing.B) {
	d := benchDocument(32, 4096)
	b.SetBytes(int64(d.Size()))
	b.ReportAllocs()
	for b.Loop() {
		_ = d.Bytes()
	}
}

func BenchmarkDiff(b *testing.B) {
	x := benchDocument(256, 256)
	y := benchDocument(256, 256)
	y.AppendChunk(NewChunk(MustParseTypeCode("ruSt"), []byte("extra")))
	b.ReportAllocs()
	for b.Loop() {
		_ = Diff(x, y)
	}
}
