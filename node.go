package lazyxml

// A NodeKind is the type of a Node.
type NodeKind uint8

const (
	// DocumentNode is the synthetic root holding every top-level node.
	DocumentNode NodeKind = iota
	// DeclarationNode is the <?xml ...?> declaration; attributes only.
	DeclarationNode
	// ProcessingInstructionNode is <?target ...?>; tag and attributes.
	ProcessingInstructionNode
	// DTDNode is <!DOCTYPE ...>; raw textual value.
	DTDNode
	// CommentNode is <!-- ... -->; text value.
	CommentNode
	// CDataNode is <![CDATA[ ... ]]>; text value.
	CDataNode
	// ElementNode is <tag ...> or <tag .../>; tag, attributes, children.
	ElementNode
	// TextNode is character data between tags; text value.
	TextNode
)

var nodeKindNames = [...]string{
	DocumentNode:              "Document",
	DeclarationNode:           "Declaration",
	ProcessingInstructionNode: "ProcessingInstruction",
	DTDNode:                   "DTD",
	CommentNode:               "Comment",
	CDataNode:                 "CData",
	ElementNode:               "Element",
	TextNode:                  "Text",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// A Node is one materialized chunk of a document tree. Unlike a Raw
// it owns its strings and is independent of the source buffer. Which
// fields are populated depends on Kind.
type Node struct {
	Kind       NodeKind
	Tag        string
	Attributes Attributes
	Value      string
	Children   []*Node
}

// NewDocument returns a document node holding children.
func NewDocument(children ...*Node) *Node {
	return &Node{Kind: DocumentNode, Children: children}
}

// NewDeclaration returns an <?xml ...?> declaration node.
func NewDeclaration(attrs ...Attr) *Node {
	return &Node{Kind: DeclarationNode, Attributes: attrs}
}

// NewProcessingInstruction returns a <?target ...?> node.
func NewProcessingInstruction(target string, attrs ...Attr) *Node {
	return &Node{Kind: ProcessingInstructionNode, Tag: target, Attributes: attrs}
}

// NewDTD returns a <!DOCTYPE ...> node holding the raw payload.
func NewDTD(value string) *Node {
	return &Node{Kind: DTDNode, Value: value}
}

// NewComment returns a comment node.
func NewComment(value string) *Node {
	return &Node{Kind: CommentNode, Value: value}
}

// NewCData returns a CDATA node.
func NewCData(value string) *Node {
	return &Node{Kind: CDataNode, Value: value}
}

// NewElement returns an element node holding children.
func NewElement(tag string, children ...*Node) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Children: children}
}

// NewText returns a text node.
func NewText(value string) *Node {
	return &Node{Kind: TextNode, Value: value}
}

// PushChild appends c to the node's children.
func (n *Node) PushChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Attribute returns the value of the attribute stored under key.
func (n *Node) Attribute(key string) (string, bool) {
	return n.Attributes.Get(key)
}

// SetAttribute stores value under key, preserving insertion order.
func (n *Node) SetAttribute(key, value string) {
	n.Attributes.Set(key, value)
}

// RemoveAttribute removes key and reports whether it was present.
func (n *Node) RemoveAttribute(key string) bool {
	return n.Attributes.Del(key)
}

// SetValue replaces the node's textual payload.
func (n *Node) SetValue(value string) {
	n.Value = value
}

// Equal reports structural equality: same kind, tag, attributes in
// order, value, and children in order.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind || n.Tag != m.Tag || n.Value != m.Value {
		return false
	}
	if !n.Attributes.Equal(m.Attributes) {
		return false
	}
	if len(n.Children) != len(m.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(m.Children[i]) {
			return false
		}
	}
	return true
}

// Root returns the document's root element: the first element among
// the node's children.
func (n *Node) Root() *Node {
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			return c
		}
	}
	return nil
}

// Find returns the first element with the given tag, searching n and
// its descendants depth-first.
func (n *Node) Find(tag string) *Node {
	if n.Kind == ElementNode && n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// Clone returns an independent deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:       n.Kind,
		Tag:        n.Tag,
		Attributes: n.Attributes.Clone(),
		Value:      n.Value,
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}
