// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package dlist

// Node is an element of a [List]. Nodes are only ever created by the list
// they belong to, and become invalid once they are removed from it.
type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	list  *List[T] // The list this node is currently linked into, nil once removed
	Value T
}

// detach links this node's neighbors to each other, taking it out of the
// chain. The node's own links are left untouched, and so are the owning list's
// head and tail; callers are responsible for both.
func (n *Node[T]) detach() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
}
