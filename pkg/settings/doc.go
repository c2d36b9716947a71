// Package settings implements optset's validated settings store.
//
// A Store tracks a fixed set of named settings. Each setting has an ordered
// list of legal options and a default, both registered once through Define.
// Reads and writes go through validated accessors:
//
//	store := settings.New(settings.StoreOptions{})
//	err := store.Define(types.Schema{
//		"volume": {Default: 5, Options: []types.Option{types.Plain(0), types.Plain(5), types.Plain(10)}},
//		"size": {Default: "large", Options: []types.Option{
//			types.Indirect("large", renderLarge),
//			types.Indirect("small", renderSmall),
//		}},
//	})
//	v, _ := store.Get("size")        // renderLarge
//	k, _ := store.GetLiteral("size") // "large"
//
// # Indirect options
//
// An indirect option stores a key but resolves to a separate effective value.
// Only keys are ever stored, compared or persisted; effective values are
// returned by Get and GetOption unless the literal variant is used.
//
// # Persistence
//
// BindFile links the store to a JSON file. Binding loads the file's values
// into memory (reconciliation) and every later successful Set rewrites the
// whole file. When the file holds an entry the schema rejects, the store's
// Confirmer decides whether the file is reset. Reconciliation never writes the
// file except to reset it.
//
// # Lifecycle
//
// A Store moves from StateUndefined to StateDefined on Define and to
// StateFileBound on BindFile. There is no unbind. A Store is not safe for
// concurrent use, and sharing one backing file between processes is not
// supported.
package settings
