package fbx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func Load(path string) (*Document, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

// Parse reads a binary or an ascii FBX stream, detected by the magic
// at the start of the file.
func Parse(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(binaryMagic))
	if err == nil && string(head) == binaryMagic {
		p := binaryParser{r: &positionReader{r: br}}
		root, err := p.Parse()
		if err != nil {
			return nil, err
		}
		return BuildDocument(root)
	}
	p := textParser{r: br}
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return BuildDocument(root)
}

// WriterFormat is a registered output format. Formats are looked up
// by a substring of their description.
type WriterFormat struct {
	Description string
	Write       func(doc *Document, w io.Writer) error
}

var writerFormats = []*WriterFormat{
	{Description: "FBX ascii (*.fbx)", Write: WriteAscii},
	{Description: "FBX binary (*.fbx)", Write: WriteBinary},
}

func WriterFormats() []*WriterFormat {
	return writerFormats
}

// FindWriterFormat returns the first registered format whose
// description contains the given substring, or nil.
func FindWriterFormat(desc string) *WriterFormat {
	for _, f := range writerFormats {
		if strings.Contains(f.Description, desc) {
			return f
		}
	}
	return nil
}

// WriteAscii writes the document as an FBX text file. FileId only
// makes sense in the binary format and is skipped.
func WriteAscii(doc *Document, w io.Writer) error {
	fmt.Fprintln(w, "; FBX 7.4.0 project file")
	fmt.Fprintln(w, "; ----------------------------------------------------")
	for _, n := range doc.RawNode.Children {
		if n.Name != "FileId" {
			n.Dump(w, 0, true)
		}
	}
	return nil
}

func Save(doc *Document, path string) error {
	return save(doc, path, WriteAscii)
}

func SaveBinary(doc *Document, path string) error {
	return save(doc, path, WriteBinary)
}

func save(doc *Document, path string, write func(*Document, io.Writer) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(doc, w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
