package lazyxml

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const indentUnit = "    "

// String returns the serialized form of the node.
func (n *Node) String() string {
	var b strings.Builder
	writeNode(&b, n, 0, false)
	return b.String()
}

// Write serializes the node to w.
func (n *Node) Write(w io.Writer) error {
	_, err := io.WriteString(w, n.String())
	return err
}

// WriteFile serializes the node to the file at path.
func (n *Node) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(n.String()), 0o644); err != nil {
		return fmt.Errorf("lazyxml: write %s: %w", path, err)
	}
	return nil
}

func writeNode(b *strings.Builder, n *Node, depth int, preserve bool) {
	switch n.Kind {
	case DocumentNode:
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeNode(b, c, depth, preserve)
		}
	case DeclarationNode:
		b.WriteString("<?xml")
		writeAttrs(b, n.Attributes)
		b.WriteString("?>")
	case ProcessingInstructionNode:
		b.WriteString("<?")
		b.WriteString(n.Tag)
		writeAttrs(b, n.Attributes)
		b.WriteString("?>")
	case DTDNode:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Value)
		b.WriteByte('>')
	case CommentNode:
		b.WriteString("<!-- ")
		b.WriteString(n.Value)
		b.WriteString(" -->")
	case CDataNode:
		b.WriteString("<![CDATA[")
		b.WriteString(n.Value)
		b.WriteString("]]>")
	case TextNode:
		b.WriteString(Escape(n.Value))
	case ElementNode:
		if v, ok := n.Attributes.Get("xml:space"); ok {
			preserve = v == "preserve"
		}
		b.WriteByte('<')
		b.WriteString(n.Tag)
		writeAttrs(b, n.Attributes)
		switch {
		case len(n.Children) == 0:
			b.WriteString("/>")
		case preserve:
			// Inserted indentation would become significant content;
			// write the children back to back.
			b.WriteByte('>')
			for _, c := range n.Children {
				writeNode(b, c, depth, preserve)
			}
			b.WriteString("</")
			b.WriteString(n.Tag)
			b.WriteByte('>')
		case len(n.Children) == 1 && n.Children[0].Kind == TextNode &&
			!strings.ContainsRune(n.Children[0].Value, '\n'):
			b.WriteByte('>')
			b.WriteString(Escape(n.Children[0].Value))
			b.WriteString("</")
			b.WriteString(n.Tag)
			b.WriteByte('>')
		default:
			b.WriteByte('>')
			for _, c := range n.Children {
				b.WriteByte('\n')
				writeIndent(b, depth+1)
				writeNode(b, c, depth+1, preserve)
			}
			b.WriteByte('\n')
			writeIndent(b, depth)
			b.WriteString("</")
			b.WriteString(n.Tag)
			b.WriteByte('>')
		}
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for ; depth > 0; depth-- {
		b.WriteString(indentUnit)
	}
}

// writeAttrs emits attributes in insertion order, double-quoted, with
// values escaped.
func writeAttrs(b *strings.Builder, attrs Attributes) {
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(Escape(a.Value))
		b.WriteByte('"')
	}
}
