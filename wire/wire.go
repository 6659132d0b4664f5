// Package wire defines the wire schema for consensus messages.
//
// These are plain Go structs with cramberry struct tags. The tag
// number is the field number; it is fixed and must never be reused or
// renumbered. Optional fields are pointers, and a nil pointer is the
// only representation of "absent": the schema has no way to tell a
// field that was never set from one that was cleared.
package wire

// Hash is a 32-byte field element identifying content, such as a block.
type Hash struct {
	Elements []byte `cramberry:"1"`
}

// Address is a 32-byte field element identifying a node.
type Address struct {
	Elements []byte `cramberry:"1"`
}
