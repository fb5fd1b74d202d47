package hkx

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Document is one behavior packfile being assembled. It owns the reference
// allocator and the shared event name table; records are emitted into the
// __data__ section in the order their Add methods are called. A Document is
// built once per export and never reused.
type Document struct {
	// Events is the shared event/variable name table. Callers intern every
	// event name before building records so the string data block, emitted
	// first, is already complete.
	Events *StringTable

	alloc     allocator
	root      *Element
	data      *Element
	finalized bool
}

func NewDocument() *Document {
	root := newElement("hkpackfile")
	root.Set("classversion", "8")
	root.Set("contentsversion", "hk_2010.2.0-r1")
	root.Set("toplevelobject", formatRef(rootIndex))
	data := root.Add(newElement("hksection"))
	data.Set("name", "__data__")
	return &Document{
		Events: NewStringTable(),
		alloc:  newAllocator(),
		root:   root,
		data:   data,
	}
}

// addObject appends a new hkobject with a freshly allocated reference.
func (d *Document) addObject(class, signature string) (*Element, Ref) {
	ref := d.alloc.next()
	obj := d.data.Add(newElement("hkobject"))
	obj.Set("name", ref)
	obj.Set("class", class)
	obj.Set("signature", signature)
	return obj, ref
}

// Bytes renders the full document. The root container must have been added;
// a packfile without its top-level object is unreadable by the engine.
func (d *Document) Bytes() ([]byte, error) {
	if !d.finalized {
		return nil, errors.New("packfile has no root container")
	}
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	buf.WriteByte('\n')
	d.root.render(&buf, 0)
	return buf.Bytes(), nil
}

// WriteTo renders the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), errors.WithMessage(err, "write packfile")
}

// WriteFile renders the document and writes it to path, replacing any
// existing file. Rendering happens entirely in memory, so a build failure
// leaves a previous file untouched.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WithMessagef(err, "write packfile %s", path)
	}
	return nil
}
