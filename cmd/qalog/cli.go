package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/qalog"
	"github.com/fwojciec/qalog/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Store       *fs.DocumentStore
	Documents   qalog.DocumentSource
	Layout      qalog.DocumentLayout
	Extractor   qalog.Extractor
	Writer      qalog.ResultWriter
	Conversions qalog.ConversionService
	Downloader  qalog.Downloader
	Unpacker    qalog.Unpacker
	Auditor     qalog.ImageAuditor
	Manifest    []qalog.RemoteDocument
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files    string `default:"files" env:"QALOG_FILES" help:"Directory holding ZipFiles/ and documents/"`
	Manifest string `env:"QALOG_MANIFEST" type:"existingfile" help:"YAML manifest of document names and IDs (defaults to the built-in list)"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Download DownloadCmd `cmd:"" help:"Download export archives listed in the manifest"`
	Sync     SyncCmd     `cmd:"" help:"Unpack downloaded archives into document folders"`
	Convert  ConvertCmd  `cmd:"" help:"Convert document folders to JSON"`
	Check    CheckCmd    `cmd:"" help:"Compare converted*.json files within each document folder"`
	Sizes    SizesCmd    `cmd:"" help:"Show the size of each converted.json"`
	Images   ImagesCmd   `cmd:"" help:"Cross-check images on disk, in the HTML and in converted.json"`
	Clean    CleanCmd    `cmd:"" help:"Remove downloaded, extracted and generated files"`
	History  HistoryCmd  `cmd:"" help:"List recorded conversions"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	Names []string      `arg:"" optional:"" help:"Documents to download (default: all in the manifest)"`
	Wait  time.Duration `short:"w" default:"1s" help:"Minimum pause between downloads"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Names []string `arg:"" optional:"" help:"Documents to unpack (default: all in the manifest)"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Names       []string `arg:"" optional:"" help:"Documents to convert (default: every document folder)"`
	Concurrency int      `short:"c" default:"4" help:"Documents converted at once"`
	Permissive  bool     `short:"p" help:"Create placeholder categories and questions instead of failing"`
	Markdown    bool     `short:"m" help:"Also write converted.md"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}

// SizesCmd is the "sizes" subcommand.
type SizesCmd struct{}

// ImagesCmd is the "images" subcommand.
type ImagesCmd struct {
	Names []string `arg:"" optional:"" help:"Documents to audit (default: every document folder)"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	All    bool `short:"a" help:"Select every kind of file"`
	Zips   bool `short:"z" help:"Remove zip archives"`
	Docs   bool `short:"d" help:"Remove HTML exports"`
	JSON   bool `short:"j" name:"json" help:"Remove generated JSON and markdown"`
	Images bool `short:"i" help:"Remove images"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Document string `short:"d" help:"Only show conversions of this document"`
	Limit    int    `short:"n" default:"20" help:"Maximum number of conversions to show"`
	Forget   bool   `help:"Delete the recorded conversions of --document"`
}
