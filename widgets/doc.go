// Package widgets provides reusable UI components built on the glint
// drawing surface. Widgets are plain values configured with chained
// builder methods; they draw themselves through the Frame API and never
// touch the device.
package widgets
