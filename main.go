// ABOUTME: Entry point for the jes4go sound tool
// ABOUTME: Inspects, plays, copies and converts sounds from the command line
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jes4go/jes4go/internal/config"
	"github.com/jes4go/jes4go/internal/version"
	"github.com/jes4go/jes4go/pkg/audio/output"
	"github.com/jes4go/jes4go/pkg/media"
	"github.com/jes4go/jes4go/pkg/sound"
)

var (
	envFile     = flag.String("env", config.DefaultEnvFile, "Environment file with JES4GO_* settings")
	logFile     = flag.String("log-file", "", "Log file path (default from JES4GO_LOG_FILE or jes4go.log)")
	verbose     = flag.Bool("verbose", false, "Also write logs to stderr")
	volume      = flag.Int("volume", 100, "Playback volume (0-100)")
	noAudio     = flag.Bool("no-audio", false, "Discard audio instead of opening the sound device")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// errUsage means the command or its arguments are wrong
var errUsage = errors.New("usage")

const usageText = `usage: jes4go [flags] <command> [args]

commands:
  info FILE             print the sound description, rate and channels
  play FILE             play a WAV, MP3, FLAC or raw PCM file and wait
  copy SRC DST          copy a WAV file
  import SRC DST        convert an MP3, FLAC or raw PCM file to WAV
  new DST [FRAMES]      write a silent WAV (default 3 seconds)
  setmediapath DIR      store DIR as the media path in the env file
  clearcache            delete media downloaded from URLs

flags:`

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	// Set up logging
	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if *verbose {
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		log.SetOutput(f)
	}

	var out output.Output = output.NewDiscard()
	if !*noAudio && flag.Arg(0) == "play" {
		oto := output.NewOto()
		oto.SetVolume(*volume)
		out = oto
	}

	lib := media.NewLibrary(cfg.MediaPath,
		media.WithOutput(out),
		media.WithSampleRate(cfg.SampleRate))
	defer lib.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, lib, *envFile, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		log.Printf("Command failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one command against the media library
func run(ctx context.Context, lib *media.Library, envFile string, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "info":
		if len(args) != 1 {
			return errUsage
		}
		s, err := lib.MakeSound(ctx, args[0])
		if err != nil {
			return err
		}
		printInfo(stdout, s)
		return nil

	case "play":
		if len(args) != 1 {
			return errUsage
		}
		s, err := lib.MakeSound(ctx, args[0])
		if err != nil {
			return err
		}
		log.Printf("Playing %s (%s)", s.FileName(), s.Duration())
		return lib.BlockingPlay(ctx, s)

	case "copy", "import":
		if len(args) != 2 {
			return errUsage
		}
		src, err := lib.MakeSound(ctx, args[0])
		if err != nil {
			return err
		}
		dst := sound.Copy(src)
		dst.SetFileName(args[1])
		if err := dst.Write(args[1]); err != nil {
			return err
		}
		fmt.Fprintln(stdout, dst)
		return nil

	case "new":
		if len(args) < 1 || len(args) > 2 {
			return errUsage
		}
		s, err := newSound(lib, args[1:])
		if err != nil {
			return err
		}
		s.SetFileName(args[0])
		if err := s.Write(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(stdout, s)
		return nil

	case "setmediapath":
		if len(args) != 1 {
			return errUsage
		}
		if err := lib.SetMediaPath(args[0]); err != nil {
			return err
		}
		if err := config.SaveMediaPath(envFile, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "New media folder: %s\n", args[0])
		return nil

	case "clearcache":
		if len(args) != 0 {
			return errUsage
		}
		dir, err := lib.ClearCache()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Cleared media cache: %s\n", dir)
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// newSound makes the silent sound for the new command
func newSound(lib *media.Library, args []string) (*sound.Sound, error) {
	if len(args) == 0 {
		return lib.MakeEmptySound(sound.DefaultSeconds*lib.SampleRate(), 0)
	}

	frames, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: frame count %q is not a number", errUsage, args[0])
	}
	return lib.MakeEmptySound(frames, 0)
}

func printInfo(w io.Writer, s *sound.Sound) {
	channels := "mono"
	if s.IsStereo() {
		channels = "stereo"
	}
	fmt.Fprintln(w, s)
	fmt.Fprintf(w, "Sampling rate: %d Hz\n", s.SamplingRate())
	fmt.Fprintf(w, "Channels: %s\n", channels)
	fmt.Fprintf(w, "Duration: %s\n", s.Duration())
}
