// Package dump renders containers as YAML documents for inspection. A
// container that fails its structural check is reported as corrupted instead
// of being walked, since a broken chain may not terminate.
package dump

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pengdafu/adt/adlist"
	"github.com/pengdafu/adt/bst"
	"github.com/pengdafu/adt/diag"
	"github.com/pengdafu/adt/slist"
	"gopkg.in/yaml.v3"
)

const (
	KindSList = "slist"
	KindList  = "adlist"
	KindTree  = "bst"
)

type Document struct {
	Kind      string   `yaml:"kind"`
	Size      int      `yaml:"size"`
	Height    int      `yaml:"height,omitempty"`
	Leaves    int      `yaml:"leaves,omitempty"`
	Items     []string `yaml:"items,omitempty"`
	Backward  []string `yaml:"backward,omitempty"`
	Root      *Branch  `yaml:"root,omitempty"`
	Corrupted string   `yaml:"corrupted,omitempty"`
}

type Branch struct {
	Key   string  `yaml:"key"`
	Value string  `yaml:"value"`
	Left  *Branch `yaml:"left,omitempty"`
	Right *Branch `yaml:"right,omitempty"`
}

// Formatter renders one payload. A nil Formatter falls back to fmt.Sprint.
type Formatter[T any] func(T) string

func (f Formatter[T]) format(v T) string {
	if f == nil {
		return fmt.Sprint(v)
	}
	return f(v)
}

// check splits a Verify result into a corruption report and a hard error.
func check(err error) (string, error) {
	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, diag.ErrCorrupted):
		return err.Error(), nil
	default:
		return "", err
	}
}

func SList[T any](l *slist.List[T], f Formatter[T]) (Document, error) {
	doc := Document{Kind: KindSList, Size: l.Len()}
	corrupted, err := check(l.Verify())
	if err != nil {
		return doc, err
	}
	if doc.Corrupted = corrupted; corrupted != "" {
		return doc, nil
	}
	for it := l.Iter(); ; {
		n := it.Next()
		if n == nil {
			break
		}
		doc.Items = append(doc.Items, f.format(n.Key()))
	}
	return doc, nil
}

// List renders l from both ends so the back-links show up next to the
// forward chain.
func List[T any](l *adlist.List[T], f Formatter[T]) (Document, error) {
	doc := Document{Kind: KindList, Size: l.Len()}
	corrupted, err := check(l.Verify())
	if err != nil {
		return doc, err
	}
	if doc.Corrupted = corrupted; corrupted != "" {
		return doc, nil
	}
	for it := l.Iter(adlist.StartHead); ; {
		n := it.Next()
		if n == nil {
			break
		}
		doc.Items = append(doc.Items, f.format(n.Key()))
	}
	for it := l.Iter(adlist.StartTail); ; {
		n := it.Next()
		if n == nil {
			break
		}
		doc.Backward = append(doc.Backward, f.format(n.Key()))
	}
	return doc, nil
}

func Tree[K, V any](t *bst.Tree[K, V], fk Formatter[K], fv Formatter[V]) (Document, error) {
	doc := Document{Kind: KindTree}
	corrupted, err := check(t.Verify())
	if err != nil {
		return doc, err
	}
	doc.Size = t.NodesNum()
	if doc.Corrupted = corrupted; corrupted != "" {
		return doc, nil
	}
	doc.Height = t.Height()
	doc.Leaves = t.LeavesNum()
	doc.Root = branch(t.Root(), fk, fv)
	return doc, nil
}

func branch[K, V any](n *bst.Node[K, V], fk Formatter[K], fv Formatter[V]) *Branch {
	if n == nil {
		return nil
	}
	return &Branch{
		Key:   fk.format(n.Key()),
		Value: fv.format(n.Value()),
		Left:  branch(n.Child(0), fk, fv),
		Right: branch(n.Child(1), fk, fv),
	}
}

func Marshal(doc Document) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, diag.Wrap(err, "marshal dump")
	}
	return out, nil
}

func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, diag.Wrap(err, "parse dump")
	}
	return doc, nil
}
