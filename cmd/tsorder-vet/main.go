// Command tsorder-vet checks Go struct fields and interface methods marked
// with a "tsorder: keep-sorted" comment.
//
//	go vet -vettool=$(which tsorder-vet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/evanrichards/tsorder/internal/goanalysis"
)

func main() {
	singlechecker.Main(goanalysis.Analyzer)
}
