package dom

import (
	"sort"
	"strconv"
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// NewTextNode returns a text node owned by od.
func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          &Text{Data: text},
	}
}

// NewDOMElement returns a detached element owned by od.
func NewDOMElement(od *Node, name string) *Node {
	return &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			LocalName:  name,
			Attributes: map[string]string{},
		},
	}
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Text
	*Document

	EventTarget
}

func (node *Node) describe() string {
	if node == nil {
		return "<nil>"
	}
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName
		keys := make([]string, 0, len(node.Attributes))
		for name := range node.Attributes {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		for _, name := range keys {
			e += " " + name + "=" + strconv.Quote(node.Attributes[name])
		}
		return e + ">"
	case TextNode:
		return strconv.Quote(node.Text.Data)
	case DocumentNode:
		return "#document"
	default:
		return node.NodeName
	}
}

func (node *Node) serialize(ident int) string {
	ser := node.describe()
	if node.NodeType == ElementNode && !node.Rect.Empty() {
		ser += " " + node.Rect.String()
	}
	ser += "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// Tree renders the subtree rooted at node in the html5lib test format,
// with element boxes appended.
func (node *Node) Tree() string {
	return strings.TrimRight(node.serialize(0), "\n")
}

// String is the one line form of the node used in logs and traces.
func (node *Node) String() string {
	return node.describe()
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// Contains reports whether on is an inclusive descendant of n.
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
		i = n.ChildNodes.Contains(child)
	}

	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	}
	child.PreviousSibling = on
	if i == 0 {
		n.FirstChild = on
	}
	return on
}

// https://dom.spec.whatwg.org/#concept-node-append
// No pre-insertion validity checks; the caller builds sane trees.
func (n *Node) AppendChild(on *Node) *Node {
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	on.NextSibling = nil
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	}
	if len(n.ChildNodes) == 0 {
		n.FirstChild, n.LastChild = nil, nil
	} else {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
	node.ParentNode, node.PreviousSibling, node.NextSibling = nil, nil, nil
	return node
}
