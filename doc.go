// Package glint is a minimal, testable terminal UI runtime.
//
// It decodes raw terminal input into semantic events, maintains an
// off-screen cell grid, and flushes only the cells that changed between
// frames. Applications implement the Application interface and are driven
// by a single-threaded draw/flush/read/update loop; see Run.
package glint
