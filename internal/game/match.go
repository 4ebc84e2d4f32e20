package game

import "golang.org/x/text/cases"

var foldCaser = cases.Fold()

// matchKey normalizes a name for case-insensitive comparison.
func matchKey(name string) string {
	return foldCaser.String(name)
}
