// Probe prints the metadata wavelet would show for each file given.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/wavelet/internal/acquire"
)

func main() {
	timeout := flag.Duration("timeout", 3*time.Second, "metadata probe timeout")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: probe [-timeout 3s] FILE...")
	}

	accepted, rejected := acquire.Filter(flag.Args())
	for _, path := range rejected {
		log.Printf("skip %s: not an audio file", path)
	}

	failed := 0
	for _, path := range accepted {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("%s: %v", path, err)
			failed++
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		start := time.Now()
		md, err := acquire.Probe(ctx, path, acquire.ReadMetadata)
		cancel()

		switch {
		case errors.Is(err, acquire.ErrProbeTimeout):
			log.Printf("%s: timed out after %s", path, *timeout)
		case err != nil:
			log.Printf("%s: %v", path, err)
			failed++
			continue
		}

		duration := md.Duration.Round(time.Second).String()
		if md.DurationUnknown {
			duration = "unknown"
		}
		log.Printf("%s (%s, read in %s)", path, humanize.Bytes(uint64(info.Size())), time.Since(start).Round(time.Millisecond))
		log.Printf("  title=%q artist=%q album=%q duration=%s", md.Title, md.Artist, md.Album, duration)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
