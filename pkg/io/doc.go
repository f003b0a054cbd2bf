// Package io reads and writes laid-out mind map trees as JSON.
//
// The format captures the tree shape (parent links and child order) plus
// every layout attribute, so export → re-import reproduces coordinates
// exactly without re-running the layout pass. It is the interchange format
// for the layout command and for external tooling that wants computed
// positions without linking this module.
package io
