package assets

import "log"

// LoadEach calls load for every path in order. A failure is logged and the
// remaining paths are still loaded. It returns how many loads succeeded.
func LoadEach(paths []string, load func(i int, path string) error) int {
	loaded := 0
	for i, path := range paths {
		if err := load(i, path); err != nil {
			log.Printf("Failed to load texture %s: %v", path, err)
			continue
		}
		loaded++
	}
	return loaded
}
