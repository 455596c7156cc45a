package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/pngkit/png"
)

func (p *Printer) printDocumentText(d *png.Document) error {
	sig := d.Header()
	if _, err := fmt.Fprintf(p.writer, "Signature: % x\nChunks: %d\n", sig[:], d.Len()); err != nil {
		return err
	}
	for i, c := range d.Chunks() {
		if _, err := fmt.Fprintf(p.writer, "%s[%d] ", p.indent(1), i); err != nil {
			return err
		}
		if err := p.printChunkText(c, 0); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printChunkText(c png.Chunk, depth int) error {
	var sb strings.Builder
	sb.WriteString(p.indent(depth))
	fmt.Fprintf(&sb, "Chunk{type: %s, data: '%s', len: %d", c.Type(), c.DataStringLimit(p.opts.MaxDataBytes), c.Length())
	if p.opts.ShowCRC {
		fmt.Fprintf(&sb, ", crc: 0x%08x", c.CRC())
	}
	if p.opts.ShowFlags {
		fmt.Fprintf(&sb, ", flags: %s", strings.Join(flagNames(c.Type()), "|"))
	}
	sb.WriteString("}\n")
	_, err := fmt.Fprint(p.writer, sb.String())
	return err
}

func (p *Printer) indent(depth int) string {
	return strings.Repeat(" ", p.opts.IndentSize*depth)
}
