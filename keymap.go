package prompter

import (
	"errors"
	"io"
	"time"
	"unicode"
)

// ErrNoBinding is returned by BindingReader.ReadBinding when the input
// sequence matches nothing in the map and the map has neither a nomatch
// nor a unicode fallback token configured.
var ErrNoBinding = errors.New("prompter: no binding for input")

// keyNode is one node of a KeyMap's prefix trie.
type keyNode[T any] struct {
	children map[rune]*keyNode[T]
	token    T
	has      bool
}

// KeyMap is a prefix trie from rune sequences to operation tokens of an
// abstract type T, the "pull" counterpart to a push-dispatch router: the
// caller asks for the next matched token rather than registering callbacks.
// Longest match wins; an ambiguous node (both a terminal token and further
// children) commits to the token after ambiguousTimeout elapses with no
// further input.
type KeyMap[T any] struct {
	root             *keyNode[T]
	nomatch          T
	hasNomatch       bool
	unicode          T
	hasUnicode       bool
	ambiguousTimeout time.Duration
}

// NewKeyMap creates an empty KeyMap with the default 150ms ambiguity
// timeout (the duration needed to tell a bare Escape from the first byte of
// an arrow/function-key sequence).
func NewKeyMap[T any]() *KeyMap[T] {
	return &KeyMap[T]{
		root:             &keyNode[T]{children: make(map[rune]*keyNode[T])},
		ambiguousTimeout: 150 * time.Millisecond,
	}
}

// Bind registers seq (a sequence of runes, e.g. "\x1b[A") to token,
// overwriting any existing binding for that exact sequence.
func (k *KeyMap[T]) Bind(seq string, token T) *KeyMap[T] {
	node := k.root
	for _, r := range seq {
		child, ok := node.children[r]
		if !ok {
			child = &keyNode[T]{children: make(map[rune]*keyNode[T])}
			node.children[r] = child
		}
		node = child
	}
	node.token = token
	node.has = true
	return k
}

// NoMatch sets the token returned for single runes that match no binding.
func (k *KeyMap[T]) NoMatch(token T) *KeyMap[T] {
	k.nomatch, k.hasNomatch = token, true
	return k
}

// Unicode sets the token returned for any unassigned printable rune; the
// rune itself is retrieved from BindingReader.LastRune().
func (k *KeyMap[T]) Unicode(token T) *KeyMap[T] {
	k.unicode, k.hasUnicode = token, true
	return k
}

// AmbiguousTimeout overrides the default 150ms ambiguity window.
func (k *KeyMap[T]) AmbiguousTimeout(d time.Duration) *KeyMap[T] {
	k.ambiguousTimeout = d
	return k
}

// BindingReader descends a KeyMap's trie over runes pulled from a
// NonBlockingReader, one binding at a time.
type BindingReader[T any] struct {
	r        *NonBlockingReader
	keymap   *KeyMap[T]
	lastRune rune
	pending  []rune // runes read but not yet consumed by a binding
}

// NewBindingReader creates a BindingReader pulling runes from r according
// to km.
func NewBindingReader[T any](r *NonBlockingReader, km *KeyMap[T]) *BindingReader[T] {
	return &BindingReader[T]{r: r, keymap: km}
}

// LastRune returns the rune that produced the map's Unicode token on the
// most recent ReadBinding call that returned it.
func (b *BindingReader[T]) LastRune() rune { return b.lastRune }

// next pulls the next rune, preferring any pushed-back pending rune, and
// waiting up to the given millisecond timeout (negative waits forever).
func (b *BindingReader[T]) next(timeoutMs int) rune {
	if len(b.pending) > 0 {
		ru := b.pending[0]
		b.pending = b.pending[1:]
		return ru
	}
	return b.r.Read(timeoutMs)
}

// pushBack returns ru to the underlying NonBlockingReader rather than to
// this BindingReader, so the next read sees it even when it is made by the
// BindingReader of the next executor.
func (b *BindingReader[T]) pushBack(ru rune) {
	b.r.buf = append([]byte(string(ru)), b.r.buf...)
}

// ReadBinding blocks for the first rune of the next sequence, then descends
// the trie, applying the ambiguity timeout at any node that is both a
// matched token and a prefix of longer bindings. Returns io.EOF once the
// underlying stream is exhausted.
func (b *BindingReader[T]) ReadBinding() (T, error) {
	var zero T

	first := b.next(-1)
	if first == EOF {
		return zero, io.EOF
	}

	node, ok := b.keymap.root.children[first]
	if !ok {
		if b.keymap.hasUnicode && isBindablePrintable(first) {
			b.lastRune = first
			return b.keymap.unicode, nil
		}
		if b.keymap.hasNomatch {
			return b.keymap.nomatch, nil
		}
		return zero, ErrNoBinding
	}

	var matched T
	hasMatch := node.has
	if hasMatch {
		matched = node.token
	}

	for len(node.children) > 0 {
		ru := b.next(int(b.keymap.ambiguousTimeout / time.Millisecond))
		if ru == TIMEOUT {
			break // commit the leaf reached so far
		}
		if ru == EOF {
			if hasMatch {
				return matched, nil
			}
			return zero, io.EOF
		}
		child, ok := node.children[ru]
		if !ok {
			// sequence broke before reaching a longer binding: the rune
			// belongs to whatever comes next, push it back.
			b.pushBack(ru)
			break
		}
		node = child
		if node.has {
			matched = node.token
			hasMatch = true
		}
	}

	if hasMatch {
		return matched, nil
	}
	if b.keymap.hasNomatch {
		return b.keymap.nomatch, nil
	}
	return zero, ErrNoBinding
}

// isBindablePrintable reports whether a rune is a plausible INSERT
// candidate: any printable, non-control character.
func isBindablePrintable(r rune) bool {
	return r >= 0 && unicode.IsPrint(r)
}
