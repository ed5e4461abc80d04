package udonarium

import (
	"archive/zip"
	"io"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
	"github.com/kazuyasi/trpg-json/internal/errors"
)

// Document is one archive member: a part rendered to XML.
type Document struct {
	FileName string
	XML      []byte
}

// Documents renders every part of a monster. Any part failing to
// render aborts the whole monster; no partial set is returned.
func Documents(m *sw25.Monster) ([]Document, error) {
	names, err := partNames(m)
	if err != nil {
		return nil, err
	}

	rm := transform(m, names)
	docs := make([]Document, len(rm.Parts))
	for i := range rm.Parts {
		body, err := renderPartXML(&rm, i)
		if err != nil {
			return nil, err
		}
		docs[i] = Document{FileName: names[i].File + ".xml", XML: body}
	}
	return docs, nil
}

// WriteArchive renders the monsters and writes one ZIP holding every
// part document to w.
func WriteArchive(w io.Writer, monsters []sw25.Monster) error {
	if len(monsters) == 0 {
		return errors.InvalidArgument("nothing to export: empty monster list")
	}

	zw := zip.NewWriter(w)
	for i := range monsters {
		docs, err := Documents(&monsters[i])
		if err != nil {
			return err
		}
		for _, doc := range docs {
			f, err := zw.Create(doc.FileName)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodePackagingFailed,
					"adding "+doc.FileName+" to archive")
			}
			if _, err := f.Write(doc.XML); err != nil {
				return errors.WrapWithCode(err, errors.CodePackagingFailed,
					"writing "+doc.FileName)
			}
		}
	}
	if err := zw.Close(); err != nil {
		return errors.WrapWithCode(err, errors.CodePackagingFailed, "finalizing archive")
	}
	return nil
}
