// Package watch triggers rescans when files under the scan roots
// change. Events are debounced so an editor save (which often produces
// several events) causes a single rescan.
package watch
