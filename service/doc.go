// Package service orchestrates the core components of the matching
// engine: orderbook engine, WALs, snapshots, and memory reclamation.
//
// It provides the single serialized write path for placing and
// cancelling orders, decoupled from network transports like gRPC.
package service
