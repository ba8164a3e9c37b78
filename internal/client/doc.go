// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line front end of the story client.
//
// It wires the service layer's change notifications to terminal output and
// dispatches subcommands to the corresponding service operations. All domain
// decisions live in the service layer; this package only renders and parses.
package client
