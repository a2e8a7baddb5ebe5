// Package watch provides fsnotify-based file watching for lint watch
// mode.
//
// A FileWatcher observes a specification document or a directory of
// documents and invokes a callback after each debounced batch of change
// events. Watching a single file watches its containing directory so that
// editors replacing the file on save are still observed.
package watch
