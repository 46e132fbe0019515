package scene

// Attr is one scalar attribute of a node: the current value, a declared
// default (absent for some custom attributes), and lock/connection state
// that blocks writes.
type Attr struct {
	Name       string
	Value      float64
	Default    float64
	HasDefault bool
	Locked     bool
	Connected  bool
}

// Channels are the recognized transform channels, in reset order.
var Channels = []string{
	"translateX", "translateY", "translateZ",
	"rotateX", "rotateY", "rotateZ",
	"scaleX", "scaleY", "scaleZ",
}

func channelDefault(name string) float64 {
	switch name {
	case "scaleX", "scaleY", "scaleZ":
		return 1
	}
	return 0
}

func (n *Node) initChannels() {
	for _, name := range Channels {
		n.addAttr(name, channelDefault(name), true)
	}
}

func (n *Node) addAttr(name string, def float64, hasDefault bool) *Attr {
	a := &Attr{Name: name, Value: def, Default: def, HasDefault: hasDefault}
	n.attrs[name] = a
	n.attrOrder = append(n.attrOrder, name)
	return a
}

func (n *Node) removeAttr(name string) {
	delete(n.attrs, name)
	for i, an := range n.attrOrder {
		if an == name {
			n.attrOrder = append(n.attrOrder[:i], n.attrOrder[i+1:]...)
			break
		}
	}
}

// AttrNames returns every attribute name in declaration order (channels
// first, then custom attributes).
func (n *Node) AttrNames() []string {
	out := make([]string, len(n.attrOrder))
	copy(out, n.attrOrder)
	return out
}
