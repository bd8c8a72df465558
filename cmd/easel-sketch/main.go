// Command easel-sketch renders a scripted drawing through the full
// engine (recorder, undo tree, soft canvas) and exports the result.
//
// Scripts are line based:
//
//	brush round size=24 color=0.8,0.2,0.1
//	seed 42
//	stroke 20,20,1 120,80,0.8 200,40,0.5
//	undo
//	branch 0
//	redo
//
// Run `easel-sketch sketch.txt --out out.png` or pipe a script on stdin.
package main

func main() {
	Execute()
}
