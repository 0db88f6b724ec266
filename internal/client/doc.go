// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the bridge worker and hands clones of its handle to the terminal
// UI and the notification poller. When the UI exits the poller is stopped
// and the bridge is shut down; a worker panic surfaces from [App.Run].
package client
