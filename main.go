package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"fpath/internal/config"
	"fpath/internal/constants"
	"fpath/internal/fspath"
	"fpath/internal/secret"
	"fpath/internal/watcher"
)

// Global debug flag
var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [-debug] <command> [args]

commands:
  parse   [-dialect posix|windows|native] <path>   show segments, absoluteness, dialect
  convert [-dialect ...] -to posix|windows <path>  re-render a path for another dialect
  join    [-dialect ...] <base> <rel>              append a relative path to a base
  parent  <path>                                   ascend one step (canonicalized when absolute)
  stat    <path>                                   existence, kind, size, extension
  ls      [-filter glob] [-all] <path>             list directory children
  abs     <path>                                   canonical absolute form
  mkdir   <path>                                   create a directory
  rm      <path>                                   remove a file
  resize  <path> <size>                            truncate/extend a file
  cwd                                              working directory
  self                                             executable path
  watch   <path>                                   poll a directory and report changes
`, constants.ApplicationName)
	os.Exit(2)
}

func main() {
	flag.BoolVar(&debugMode, "debug", false, "enable debug output")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	configManager := config.NewManager()
	cfg, err := configManager.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Wire the keyring store for SMB credential lookup; fall back to a
	// process-local store when the OS keyring is unavailable.
	if store, err := secret.NewKeyringStore(); err == nil {
		fspath.SetSecretStore(store)
	} else {
		debugPrint("keyring unavailable, using memory store: %v", err)
		fspath.SetSecretStore(secret.NewMemoryStore())
	}
	fspath.SetPersistCredentials(cfg.SMB.PersistCredentials)

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if err := run(cmd, args, cfg, configManager); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.ApplicationName, err)
		os.Exit(1)
	}
}

func run(cmd string, args []string, cfg *config.Config, configManager *config.Manager) error {
	switch cmd {
	case "parse":
		return cmdParse(args, cfg)
	case "convert":
		return cmdConvert(args, cfg)
	case "join":
		return cmdJoin(args, cfg)
	case "parent":
		return cmdParent(args)
	case "stat":
		return cmdStat(args)
	case "ls":
		return cmdList(args, cfg, configManager)
	case "abs":
		return cmdAbs(args)
	case "mkdir", "rm", "resize":
		return cmdMutate(cmd, args)
	case "cwd":
		return cmdCwd()
	case "self":
		return cmdSelf()
	case "watch":
		return cmdWatch(args, cfg)
	default:
		usage()
		return nil
	}
}

// dialectByName maps a config/flag name to a Dialect.
func dialectByName(name string) fspath.Dialect {
	switch strings.ToLower(name) {
	case "posix":
		return fspath.Posix
	case "windows":
		return fspath.Windows
	default:
		return fspath.Native()
	}
}

func cmdParse(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	dialect := fs.String("dialect", cfg.Path.DefaultDialect, "input dialect")
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
	}
	p := fspath.Parse(fs.Arg(0), dialectByName(*dialect))
	fmt.Printf("dialect:  %s\n", p.Dialect())
	fmt.Printf("absolute: %v\n", p.IsAbsolute())
	fmt.Printf("segments: %s\n", strings.Join(p.Segments(), " | "))
	fmt.Printf("filename: %s\n", p.Filename())
	return nil
}

func cmdConvert(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	dialect := fs.String("dialect", cfg.Path.DefaultDialect, "input dialect")
	target := fs.String("to", "native", "target dialect")
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
	}
	p := fspath.Parse(fs.Arg(0), dialectByName(*dialect))
	fmt.Println(p.ToText(dialectByName(*target)))
	return nil
}

func cmdJoin(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	dialect := fs.String("dialect", cfg.Path.DefaultDialect, "input dialect")
	fs.Parse(args)
	if fs.NArg() != 2 {
		usage()
	}
	d := dialectByName(*dialect)
	joined, err := fspath.Parse(fs.Arg(0), d).Join(fspath.Parse(fs.Arg(1), d))
	if err != nil {
		return err
	}
	fmt.Println(joined)
	return nil
}

func cmdParent(args []string) error {
	if len(args) != 1 {
		usage()
	}
	vfs, p, err := fspath.Resolve(args[0])
	if err != nil {
		return err
	}
	parent, err := fspath.NewQuery(vfs).Ascend(p)
	if err != nil {
		return err
	}
	fmt.Println(parent)
	return nil
}

func cmdStat(args []string) error {
	if len(args) != 1 {
		usage()
	}
	vfs, p, err := fspath.Resolve(args[0])
	if err != nil {
		return err
	}
	q := fspath.NewQuery(vfs)
	fmt.Printf("path:      %s\n", p)
	fmt.Printf("exists:    %v\n", q.Exists(p))
	fmt.Printf("file:      %v\n", q.IsFile(p))
	fmt.Printf("directory: %v\n", q.IsDirectory(p))
	fmt.Printf("size:      %d\n", q.FileSize(p))
	fmt.Printf("extension: %s\n", q.Extension(p))
	return nil
}

func cmdList(args []string, cfg *config.Config, configManager *config.Manager) error {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	filter := fs.String("filter", "", "doublestar glob applied to child names")
	all := fs.Bool("all", cfg.Listing.ShowHidden, "include hidden children")
	fs.Parse(args)
	if fs.NArg() != 1 {
		usage()
	}
	vfs, p, err := fspath.Resolve(fs.Arg(0))
	if err != nil {
		return err
	}
	q := fspath.NewQuery(vfs)

	var children []fspath.Path
	if *filter != "" {
		children, err = q.ListMatching(p, *filter)
		if err != nil {
			return err
		}
		cfg.RecordFilter(*filter)
		if err := configManager.Save(cfg); err != nil {
			debugPrint("failed to record filter history: %v", err)
		}
	} else {
		children = q.ListChildren(p)
	}

	for _, child := range children {
		name := child.Filename()
		if !*all && isHidden(child.String(), name) {
			continue
		}
		fmt.Println(name)
	}
	return nil
}

func cmdAbs(args []string) error {
	if len(args) != 1 {
		usage()
	}
	vfs, p, err := fspath.Resolve(args[0])
	if err != nil {
		return err
	}
	abs, err := fspath.NewQuery(vfs).MakeAbsolute(p)
	if err != nil {
		return err
	}
	fmt.Println(abs)
	return nil
}

func cmdMutate(cmd string, args []string) error {
	want := 1
	if cmd == "resize" {
		want = 2
	}
	if len(args) != want {
		usage()
	}
	vfs, p, err := fspath.Resolve(args[0])
	if err != nil {
		return err
	}
	q := fspath.NewQuery(vfs)

	var ok bool
	switch cmd {
	case "mkdir":
		ok = q.CreateDirectory(p)
	case "rm":
		ok = q.RemoveFile(p)
	case "resize":
		size, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad size %q: %w", args[1], err)
		}
		ok = q.ResizeFile(p, size)
	}
	if !ok {
		return fmt.Errorf("%s failed for %s", cmd, p)
	}
	return nil
}

func cmdCwd() error {
	wd, err := fspath.NewLocalQuery().CurrentDirectory()
	if err != nil {
		return err
	}
	fmt.Println(wd)
	return nil
}

func cmdSelf() error {
	exe, err := fspath.NewLocalQuery().ExecutablePath()
	if err != nil {
		return err
	}
	fmt.Println(exe)
	return nil
}

func cmdWatch(args []string, cfg *config.Config) error {
	if len(args) != 1 {
		usage()
	}
	vfs, p, err := fspath.Resolve(args[0])
	if err != nil {
		return err
	}
	if !fspath.NewQuery(vfs).IsDirectory(p) {
		return fmt.Errorf("not a directory: %s", p)
	}

	interval := time.Duration(cfg.Watcher.IntervalSeconds) * time.Second
	dw := watcher.NewDirectoryWatcher(vfs, p, interval, cfg.Watcher.BufferSize)
	dw.Start()
	defer dw.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("watching %s (interval %s)\n", p, interval)
	for {
		select {
		case changes, ok := <-dw.Events():
			if !ok {
				return nil
			}
			for _, c := range changes.Added {
				fmt.Printf("+ %s\n", c.Name)
			}
			for _, c := range changes.Deleted {
				fmt.Printf("- %s\n", c.Name)
			}
			for _, c := range changes.Modified {
				fmt.Printf("~ %s\n", c.Name)
			}
		case <-sig:
			return nil
		}
	}
}

// isHidden reports whether a child should be skipped by default listings.
func isHidden(path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return isPlatformHidden(path)
}
