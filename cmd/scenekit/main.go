// Command scenekit runs canvas macros against an in-memory scene
// engine and inspects the result. It is the headless front end to the
// engine: the interactive editor embeds the same store behind a
// rendering layer.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
