// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

// Package dlist provides a generic doubly linked list that keeps track of its
// head, tail and length. Nodes handed out by [List.AddToHead] and
// [List.AddToTail] can later be relocated with [List.MoveToFront] and
// [List.MoveToEnd], or removed with [List.Delete], all in constant time.
//
// A [List] is not safe for concurrent use; callers must provide their own
// mutual exclusion.
package dlist

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/DataDog/dlist-internal-go/log"
)

// ErrNotMember is returned when an operation is given a node that is not
// currently linked into the receiving list. This covers nil nodes, nodes owned
// by another list, and nodes that were already removed.
var ErrNotMember = errors.New("node is not a member of this list")

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New creates a new, empty [List].
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.length
}

// AddToHead inserts a new node holding value at the front of the list, and
// returns it.
func (l *List[T]) AddToHead(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.linkFront(node)
	return node
}

// AddToTail inserts a new node holding value at the back of the list, and
// returns it.
func (l *List[T]) AddToTail(value T) *Node[T] {
	node := &Node[T]{Value: value}
	l.linkBack(node)
	return node
}

// RemoveFromHead removes the first node of the list and returns its value. The
// boolean is false if the list was empty.
func (l *List[T]) RemoveFromHead() (T, bool) {
	node := l.head
	if node == nil {
		var zero T
		return zero, false
	}
	l.unlink(node)
	return node.Value, true
}

// RemoveFromTail removes the last node of the list and returns its value. The
// boolean is false if the list was empty.
func (l *List[T]) RemoveFromTail() (T, bool) {
	node := l.tail
	if node == nil {
		var zero T
		return zero, false
	}
	l.unlink(node)
	return node.Value, true
}

// MoveToFront relocates node to the front of the list. The node keeps its
// identity, so the reference remains valid after the move. Returns an error
// wrapping [ErrNotMember] if node does not belong to this list, in which case
// the list is left unchanged.
func (l *List[T]) MoveToFront(node *Node[T]) error {
	if err := l.checkMember("MoveToFront", node); err != nil {
		return err
	}
	if node == l.head {
		return nil
	}
	l.unlink(node)
	l.linkFront(node)
	return nil
}

// MoveToEnd relocates node to the back of the list. It follows the same rules
// as [List.MoveToFront].
func (l *List[T]) MoveToEnd(node *Node[T]) error {
	if err := l.checkMember("MoveToEnd", node); err != nil {
		return err
	}
	if node == l.tail {
		return nil
	}
	l.unlink(node)
	l.linkBack(node)
	return nil
}

// Delete removes node from the list, preserving the order of the remaining
// nodes. The node must not be used with any list afterwards. Returns an error
// wrapping [ErrNotMember] if node does not belong to this list.
func (l *List[T]) Delete(node *Node[T]) error {
	if err := l.checkMember("Delete", node); err != nil {
		return err
	}
	l.unlink(node)
	return nil
}

// MaxFunc returns the greatest value in the list according to cmp, which must
// return a negative number when a < b, zero when a == b and a positive number
// when a > b. On ties, the value closest to the head wins. The boolean is false
// if the list is empty.
func (l *List[T]) MaxFunc(cmp func(a, b T) int) (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	best := l.head.Value
	for node := l.head.next; node != nil; node = node.next {
		if cmp(node.Value, best) > 0 {
			best = node.Value
		}
	}
	return best, true
}

// Max returns the greatest value held in l, using the natural ordering of T.
// The boolean is false if the list is empty.
func Max[T cmp.Ordered](l *List[T]) (T, bool) {
	return l.MaxFunc(cmp.Compare[T])
}

// checkMember verifies that node is currently linked into l.
func (l *List[T]) checkMember(op string, node *Node[T]) error {
	if node != nil && node.list == l {
		return nil
	}
	log.Debug("dlist: %s called with a node that does not belong to the list (len=%d)", op, l.length)
	return fmt.Errorf("dlist: %s: %w", op, ErrNotMember)
}

// linkFront places the specified, unlinked node at the front of the list.
func (l *List[T]) linkFront(node *Node[T]) {
	node.list = l
	node.next = l.head
	if l.head == nil {
		l.tail = node
	} else {
		l.head.prev = node
	}
	l.head = node
	l.length++
}

// linkBack places the specified, unlinked node at the back of the list.
func (l *List[T]) linkBack(node *Node[T]) {
	node.list = l
	node.prev = l.tail
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.length++
}

// unlink takes a member node out of the list, fixing up head and tail, and
// clears its links and owner.
func (l *List[T]) unlink(node *Node[T]) {
	if node == l.head {
		l.head = node.next
	}
	if node == l.tail {
		l.tail = node.prev
	}
	node.detach()

	node.prev = nil
	node.next = nil
	node.list = nil
	l.length--
}
