package dom

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	Title           string
	DocumentElement *Node
	DefaultView     *Window

	node *Node
}

// Window is the view a document is presented in. Its inner size is the
// viewport used by ElementFromPoint.
// https://html.spec.whatwg.org/#the-window-object
type Window struct {
	Document                *Node
	InnerWidth, InnerHeight float64
}

// NewHTMLDocument returns a document node with an html element and a body
// filling a width x height viewport.
func NewHTMLDocument(width, height float64) *Node {
	doc := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{},
	}
	doc.Document.node = doc
	doc.OwnerDocument = doc
	doc.DefaultView = &Window{Document: doc, InnerWidth: width, InnerHeight: height}

	html := doc.CreateElement("html")
	html.Rect = DOMRect{Width: width, Height: height}
	doc.AppendChild(html)
	doc.DocumentElement = html

	body := doc.CreateElement("body")
	body.Rect = DOMRect{Width: width, Height: height}
	html.AppendChild(body)
	return doc
}

// CreateElement is https://dom.spec.whatwg.org/#dom-document-createelement
func (d *Document) CreateElement(localName string) *Node {
	return NewDOMElement(d.node, localName)
}

// CreateTextNode is https://dom.spec.whatwg.org/#dom-document-createtextnode
func (d *Document) CreateTextNode(data string) *Node {
	return NewTextNode(d.node, data)
}

// Body returns the first body child of the document element.
func (d *Document) Body() *Node {
	if d.DocumentElement == nil {
		return nil
	}
	for _, child := range d.DocumentElement.ChildNodes {
		if child.NodeType == ElementNode && child.NodeName == "body" {
			return child
		}
	}
	return nil
}

// GetElementByID is https://dom.spec.whatwg.org/#dom-nonelementparentnode-getelementbyid
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	walk(d.DocumentElement, func(n *Node) bool {
		if found != nil || n.NodeType != ElementNode {
			return false
		}
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ElementFromPoint returns the topmost visible element whose box contains
// the client point (x, y): the last one in tree order, since later siblings
// paint over earlier ones. Points outside the viewport hit nothing; points
// inside the viewport fall back to the document element.
// https://drafts.csswg.org/cssom-view/#dom-document-elementfrompoint
func (d *Document) ElementFromPoint(x, y float64) *Node {
	if v := d.DefaultView; v != nil {
		if x < 0 || y < 0 || x >= v.InnerWidth || y >= v.InnerHeight {
			return nil
		}
	}

	var hit *Node
	walk(d.DocumentElement, func(n *Node) bool {
		if n.NodeType != ElementNode {
			return false
		}
		if n.Hidden {
			return false
		}
		if n.Rect.ContainsPoint(x, y) {
			hit = n
		}
		return true
	})
	if hit == nil {
		return d.DocumentElement
	}
	return hit
}

// walk visits n and its descendants in tree order. Returning false from
// visit skips the node's children.
func walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.ChildNodes {
		walk(child, visit)
	}
}
