package lazyxml

import (
	"io"
	"strings"
)

// builderFrame is one open element during tree construction together
// with the xml:space mode its content inherits.
type builderFrame struct {
	node     *Node
	preserve bool
}

// buildNode materializes the tree for a document raw by walking the
// token stream with an explicit stack.
func buildNode(doc Raw) (*Node, error) {
	root := &Node{Kind: DocumentNode}
	stack := []builderFrame{{node: root}}
	r := doc
	for {
		n, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		top := &stack[len(stack)-1]
		switch n.Kind {
		case RawElementOpen, RawElementSelfClosed:
			tag, _ := n.Tag()
			attrs, err := n.Attributes()
			if err != nil {
				return nil, err
			}
			el := &Node{Kind: ElementNode, Tag: tag, Attributes: attrs}
			top.node.PushChild(el)
			if n.Kind == RawElementOpen {
				preserve := top.preserve
				if v, ok := attrs.Get("xml:space"); ok {
					preserve = v == "preserve"
				}
				stack = append(stack, builderFrame{node: el, preserve: preserve})
			}
		case RawElementClose:
			tag, _ := n.Tag()
			if len(stack) == 1 {
				return nil, &OrphanCloseError{Tag: tag, Pos: n.Pos}
			}
			if top.node.Tag != tag {
				return nil, &UnbalancedTagError{Expected: top.node.Tag, Got: tag, Pos: n.Pos}
			}
			stack = stack[:len(stack)-1]
		case RawText:
			v, _ := n.Value()
			if !top.preserve {
				v = strings.Trim(v, " \t\r\n")
				if v == "" {
					break
				}
			}
			top.node.PushChild(&Node{Kind: TextNode, Value: v})
		case RawComment:
			v, _ := n.Value()
			top.node.PushChild(&Node{Kind: CommentNode, Value: v})
		case RawCData:
			v, _ := n.Value()
			top.node.PushChild(&Node{Kind: CDataNode, Value: v})
		case RawProcessingInstruction:
			tag, _ := n.Tag()
			attrs, err := n.Attributes()
			if err != nil {
				return nil, err
			}
			top.node.PushChild(&Node{Kind: ProcessingInstructionNode, Tag: tag, Attributes: attrs})
		case RawDeclaration:
			attrs, err := n.Attributes()
			if err != nil {
				return nil, err
			}
			top.node.PushChild(&Node{Kind: DeclarationNode, Attributes: attrs})
		case RawDTD:
			v, _ := n.Value()
			top.node.PushChild(&Node{Kind: DTDNode, Value: v})
		}
		r = n
	}
	if len(stack) > 1 {
		open := stack[len(stack)-1].node
		return nil, &UnbalancedTagError{Expected: open.Tag, Pos: len(doc.data)}
	}
	return root, nil
}
