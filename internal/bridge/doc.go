// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge runs every remote API call on one dedicated worker
// goroutine and lets any number of callers reach it through cheap,
// clonable [Handle] values.
//
// A caller builds a request through a Handle method; the request is pushed
// onto an unbounded FIFO queue together with a single-shot reply channel, and
// the caller waits for that reply. The worker pops requests one at a time,
// runs each against the [adapter.RemoteAPI] value that is current at pop
// time, and resolves the reply. Because requests are served strictly in
// order, the worker's client can be swapped ([Handle.Login]) without any
// locking around it.
//
// Handle methods block the calling goroutine until the reply arrives, the
// context is cancelled, or the worker is gone ([ErrExited]). Event loops that
// must not block, such as a bubbletea Update, call them from a tea.Cmd.
//
// Cancelling the context of a pending call does not retract the request: the
// worker still performs it and its result is discarded.
//
// The [Bridge] controller owns the worker. [Bridge.Shutdown] stops it, waits
// for the goroutine to exit, and re-raises a panic that escaped a remote call.
package bridge
