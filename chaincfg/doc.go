// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package chaincfg defines the network parameter profiles of a bloodcoin node
// and the selector that decides which of them is active.
//
// Three profiles exist: the main network, the public test network and the
// local regression test network. Each one is built by its own constructor
// from a shared set of defaults, constructs its genesis block, checks the
// result against the constants it asserts, and materializes its fixed seed
// addresses. Construction fails with a *GenesisMismatchError when a constant
// table has been corrupted; callers must not continue with such a profile.
//
// A Selector holds all three profiles and the currently active one:
//
//	sel, err := chaincfg.NewSelector(chaincfg.DefaultPrimitives())
//	if err != nil {
//		// corrupted constants, log and exit
//	}
//	if err := sel.SelectFromFlags(cfg.TestNet, cfg.RegTest); err != nil {
//		// both networks requested
//	}
//	params := sel.Current()
//
// The selector is a plain value owned by the application and handed to the
// components that need network parameters, so several network contexts may
// coexist in one process.
package chaincfg
