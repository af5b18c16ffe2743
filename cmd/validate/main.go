// Command validate checks authored adventure files before they are played.
//
//	validate [-publish addr] [-prefix adventure:] file.yaml|dir...
//	validate -unpublish -publish addr name...
//
// Each file must decode strictly and pass the key rules. A directory
// argument stands for every .yaml and .yml file in it. With -publish,
// every valid file is also written to Redis under its base name, ready for
// the game's redis backend. With -unpublish, the named adventures are
// removed from Redis instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tatianab/text-adventure/internal/keys"
	"github.com/tatianab/text-adventure/internal/models"
	"github.com/tatianab/text-adventure/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	publish := flag.String("publish", "", "redis address to publish valid adventures to")
	prefix := flag.String("prefix", store.DefaultRedisPrefix, "redis key prefix used with -publish")
	unpublish := flag.Bool("unpublish", false, "remove the named adventures from the -publish redis instead of validating")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-publish addr] [-prefix p] [-unpublish] <adventure.yaml|dir>...\n", os.Args[0])
		return 1
	}
	if *unpublish && *publish == "" {
		fmt.Fprintln(os.Stderr, "-unpublish requires -publish")
		return 1
	}

	var rs *store.RedisStore
	if *publish != "" {
		rs = store.NewRedisStore(*publish, *prefix, nil)
		defer rs.Close()
	}

	ctx := context.Background()
	var ok bool
	if *unpublish {
		ok = unpublishAll(ctx, rs, flag.Args(), os.Stdout, os.Stderr)
	} else {
		ok = validateAll(ctx, rs, flag.Args(), os.Stdout, os.Stderr)
	}
	if !ok {
		return 1
	}
	return 0
}

// validateAll validates every file named by args, publishing each valid one
// when rs is not nil. It reports whether every file passed.
func validateAll(ctx context.Context, rs *store.RedisStore, args []string, out, errOut io.Writer) bool {
	files, err := expandPaths(args)
	if err != nil {
		fmt.Fprintf(errOut, "Validation failed: %v\n", err)
		return false
	}
	if len(files) == 0 {
		fmt.Fprintln(errOut, "Validation failed: no adventure files found")
		return false
	}

	passed := true
	for _, filename := range files {
		fmt.Fprintf(out, "Validating %s...\n", filename)
		adv, err := validateFile(filename)
		if err != nil {
			fmt.Fprintf(errOut, "Validation failed: %v\n", err)
			passed = false
			continue
		}
		fmt.Fprintf(out, "%s is valid (%d locations)\n", filename, adv.Locations.Len())

		if rs != nil {
			name := adventureName(filename)
			if err := rs.Save(ctx, name, adv); err != nil {
				fmt.Fprintf(errOut, "Publishing %s failed: %v\n", filename, err)
				passed = false
				continue
			}
			fmt.Fprintf(out, "Published %s as %q\n", filename, name)
		}
	}
	return passed
}

// unpublishAll removes each named adventure from rs. File paths are
// accepted too and reduced to the name they were published under.
func unpublishAll(ctx context.Context, rs *store.RedisStore, args []string, out, errOut io.Writer) bool {
	passed := true
	for _, arg := range args {
		name := adventureName(arg)
		if err := rs.Delete(ctx, name); err != nil {
			fmt.Fprintf(errOut, "Unpublishing %s failed: %v\n", name, err)
			passed = false
			continue
		}
		fmt.Fprintf(out, "Unpublished %q\n", name)
	}
	return passed
}

// expandPaths replaces each directory in args with the adventure files it
// holds. Files are passed through unchanged.
func expandPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			files = append(files, arg)
			continue
		}
		found, err := store.ListAdventures(arg)
		if err != nil {
			return nil, fmt.Errorf("listing adventures in %s: %w", arg, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// validateFile decodes filename strictly and checks its keys.
func validateFile(filename string) (*models.Adventure, error) {
	ext := filepath.Ext(filename)
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("adventure file must have a .yaml or .yml extension: %s", filepath.Base(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	adv, err := store.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("file %s failed strict YAML decoding: %w", filename, err)
	}
	if adv.Locations.Len() == 0 {
		return nil, fmt.Errorf("file %s has no locations", filename)
	}
	if err := keys.Validate(adv); err != nil {
		return nil, fmt.Errorf("file %s: %w", filename, err)
	}
	return adv, nil
}

func adventureName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
