// Command glint runs the demo applications for the glint terminal UI
// runtime.
package main

func main() {
	Execute()
}
