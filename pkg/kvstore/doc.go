// Package kvstore provides the small string key-value storage used for
// page-local preferences such as the color theme and the saved-article marker.
//
// MemoryStore lives for the process lifetime. FileStore keeps values in a
// YAML file protected by an advisory lock (gofrs/flock), which lets a host
// persist preferences across runs.
//
//	store := kvstore.NewFileStore(filepath.Join(dir, "ui.yaml"))
//	saved := kvstore.Flag{Store: store, Key: "saved_article"}
//	on, err := saved.Toggle(ctx)
package kvstore
