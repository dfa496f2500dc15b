// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package util provides auxiliary functions internally used in rtcmodels package
package util

// Ref returns a pointer to a copy of v.
func Ref[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *p, or nil when p is nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p

	return &c
}

// Deref returns *p and true, or the zero value and false when p is nil.
func Deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T

		return zero, false
	}

	return *p, true
}
