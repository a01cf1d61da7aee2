// Command amazer turns a maze description into a simplicial-complex model
// and its atom valuation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/amazer/internal/fsutil"
	"github.com/banshee-data/amazer/internal/version"
)

func main() {
	res, err := runGenerate(os.Args[1:], fsutil.OSFileSystem{})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if errors.Is(err, errVersion) {
		fmt.Println(version.String())
		return
	}
	if err != nil {
		log.Fatalf("amazer: %v", err)
	}
	log.Printf("done: %d rooms, %d corridors, %d simplices, %d links skipped in %s",
		res.Complex.Rooms, res.Complex.Corridors, len(res.Complex.Simplices),
		len(res.Diagnostics), res.Duration)
}
