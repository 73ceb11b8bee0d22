// Package core provides the foundational conversation types shared by every
// other package: the Role enumeration and the immutable Message value.
//
// A conversation is an ordered []Message where insertion order is the causal
// order. Helpers in this package never reorder or mutate their input; they
// return fresh slices instead.
package core
