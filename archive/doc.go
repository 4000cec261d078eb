// Package archive implements versioned catalog snapshots over a blob store.
//
// # Overview
//
// An archive is a point-in-time export of every collection in a catalog.
// Each export produces one object per collection plus a manifest that names
// the objects and records how to decode them (codec, compression, checksum).
// Archives are self-contained: a Reader needs nothing but the store.
//
// # Layout
//
// Objects in the store:
//
//	CURRENT                          - name of the committed manifest
//	MANIFEST-000001                  - manifest, JSON
//	COMMIT-000001                    - commit marker (conditional stores only)
//	collections/000001/0000.json.zst - encoded, compressed collection
//	collections/000001/0001.json.zst
//
// Collection object keys are positional; the collection name lives in the
// manifest entry, so arbitrary names never produce colliding keys.
//
// # Commit Protocol
//
// Write follows a two-phase protocol:
//
//  1. Put all collection objects, then the manifest MANIFEST-NNNNNN
//  2. Commit the manifest name through a CommitStore
//
// Readers resolve CURRENT first and only ever follow committed pointers,
// so a crashed or racing writer cannot expose a half-written archive. With
// a BlobCommitStore over a store that supports conditional writes, or with
// a DDBCommitStore, racing writers lose with ErrConcurrentCommit.
//
// # Time Travel
//
// Every export keeps its manifest. Versions lists them all, ManifestAt
// loads a specific one, and ReadManifest restores the catalog state it
// describes. DeleteVersion prunes old exports.
package archive
