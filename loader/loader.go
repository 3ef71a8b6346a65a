// Package loader reads plain-text documents from disk.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/botirk38/docsim/types"
)

// Extension is the file suffix LoadDir picks up.
const Extension = ".txt"

// LoadFile reads a single document labelled with its base file name. UTF-8
// is assumed; a UTF-8 or UTF-16 byte order mark overrides that and is
// stripped.
func LoadFile(path string) (types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	text, err := Decode(f)
	if err != nil {
		return types.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return types.Document{Label: filepath.Base(path), Text: text}, nil
}

// Decode reads r to the end as BOM-aware text.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadDir reads every .txt file directly under dir, sorted by label.
// Subdirectories are not descended into.
func LoadDir(dir string) ([]types.Document, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var docs []types.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), Extension) {
			continue
		}
		doc, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoDocuments)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Label < docs[j].Label })
	return docs, nil
}
