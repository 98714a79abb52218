package touchmap

import (
	"fmt"
	"os"
)

// debugLogf prints a debug line to stderr. Callers check Scene.debug first.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[touchmap] "+format+"\n", args...)
}
