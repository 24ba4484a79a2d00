// ABOUTME: Entry point for the picture explorer
// ABOUTME: Opens an image file or URL in the terminal explorer
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jes4go/jes4go/internal/config"
	"github.com/jes4go/jes4go/internal/download"
	"github.com/jes4go/jes4go/internal/ui"
	"github.com/jes4go/jes4go/internal/version"
	"github.com/jes4go/jes4go/pkg/media"
	"github.com/jes4go/jes4go/pkg/picture"
)

var (
	logFile     = flag.String("log-file", "", "Log file path (default from JES4GO_LOG_FILE or jes4go.log)")
	zoom        = flag.Int("zoom", picture.DefaultZoom, "Initial zoom level in percent (25, 50, 75, 100, 150, 200, 500)")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// errUsage means the command line has the wrong number of arguments
var errUsage = errors.New("wrong number of arguments")

func main() {
	program := filepath.Base(os.Args[0])
	flag.Usage = func() {
		fmt.Println(usage(program))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	file, title, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Println(usage(program))
		os.Exit(1)
	}

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	// The explorer owns the terminal, so logs only go to the file
	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()
	log.SetOutput(f)

	path, err := resolveImage(context.Background(), cfg, file)
	if err != nil {
		fmt.Println(err)
		fmt.Println(usage(program))
		os.Exit(1)
	}

	ex, err := picture.Open(path, title)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := ex.SetZoom(*zoom); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log.Printf("Exploring %s (%s)", path, version.String())
	if _, err := ui.Run(ex).Run(); err != nil {
		log.Printf("Explorer error: %v", err)
		fmt.Println(err)
		os.Exit(1)
	}
}

func usage(program string) string {
	return fmt.Sprintf("usage: %s file [title]", program)
}

// parseArgs splits the positional arguments into the image and the title.
// The title defaults to the file name.
func parseArgs(args []string) (string, string, error) {
	switch len(args) {
	case 1:
		return args[0], args[0], nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", errUsage
	}
}

// resolveImage returns a local path for file. URLs are downloaded and
// missing relative names are looked up in the media path.
func resolveImage(ctx context.Context, cfg config.Config, file string) (string, error) {
	if download.IsRemote(file) {
		return media.NewLibrary(cfg.MediaPath).Resolve(ctx, file)
	}

	if isFile(file) {
		return file, nil
	}
	if cfg.MediaPath != "" && !filepath.IsAbs(file) {
		if candidate := filepath.Join(cfg.MediaPath, file); isFile(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s does not exist or is not a file", file)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
