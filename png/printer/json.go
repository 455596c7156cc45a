package printer

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/joshuapare/pngkit/png"
)

// jsonDocument represents a document in JSON format.
type jsonDocument struct {
	Signature string      `json:"signature"`
	Chunks    []jsonChunk `json:"chunks"`
}

// jsonChunk represents a chunk in JSON format. Data is always present as
// hex so the output is lossless; Text is the display rendering.
type jsonChunk struct {
	Type   string   `json:"type"`
	Length uint32   `json:"length"`
	CRC    *uint32  `json:"crc,omitempty"`
	Flags  []string `json:"flags,omitempty"`
	Text   string   `json:"text"`
	Data   string   `json:"data_hex"`
}

func (p *Printer) toJSONChunk(c png.Chunk) jsonChunk {
	jc := jsonChunk{
		Type:   c.Type().String(),
		Length: c.Length(),
		Text:   c.DataStringLimit(p.opts.MaxDataBytes),
		Data:   hex.EncodeToString(c.Data()),
	}
	if p.opts.ShowCRC {
		crc := c.CRC()
		jc.CRC = &crc
	}
	if p.opts.ShowFlags {
		jc.Flags = flagNames(c.Type())
	}
	return jc
}

func (p *Printer) printDocumentJSON(d *png.Document) error {
	sig := d.Header()
	doc := jsonDocument{
		Signature: hex.EncodeToString(sig[:]),
		Chunks:    make([]jsonChunk, 0, d.Len()),
	}
	for _, c := range d.Chunks() {
		doc.Chunks = append(doc.Chunks, p.toJSONChunk(c))
	}
	return p.writeJSON(doc)
}

func (p *Printer) printChunkJSON(c png.Chunk) error {
	return p.writeJSON(p.toJSONChunk(c))
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
