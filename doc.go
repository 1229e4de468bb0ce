// Package minercars implements the MinerCars dealership back-office: a
// vehicle catalog, a customer account registry, and an append-only ledger of
// purchase tickets, all persisted as delimited text files.
//
// The Engine type ties the three together and performs purchases and returns
// as single logical operations; it also answers revenue queries over the
// ticket ledger.
package minercars
