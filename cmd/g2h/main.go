// Command g2h generates HTTP/JSON bridge code for gRPC services without
// going through protoc. It accepts either a pre-built descriptor set or raw
// .proto sources and writes the generated files to an output directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/juspay/g2h"
)

func main() {
	app := &cli.App{
		Name:  "g2h",
		Usage: "generate HTTP/JSON endpoints for gRPC service definitions",
		Commands: []*cli.Command{
			generateCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "g2h: %v\n", err)
		os.Exit(1)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate bridge code from a descriptor set or .proto sources",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "descriptor-set",
				Aliases: []string{"d"},
				Usage:   "read service definitions from a serialized FileDescriptorSet",
			},
			&cli.StringSliceFlag{
				Name:    "proto",
				Aliases: []string{"p"},
				Usage:   "compile the given .proto file (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "import-path",
				Aliases: []string{"I"},
				Usage:   "search path for proto imports (repeatable)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "directory to write generated files into",
			},
			&cli.BoolFlag{
				Name:  "string-enums",
				Usage: "generate per-field enum string codecs and omission tables",
			},
			&cli.StringFlag{
				Name:  "descriptor-set-out",
				Usage: "also persist the resolved descriptor set to this path",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync()

	g2h.CheckDeps(log)

	files, err := loadFiles(c)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("nothing to generate: pass --descriptor-set or --proto")
	}

	gen := g2h.NewGenerator(g2h.Options{
		EnableStringEnums: c.Bool("string-enums"),
		DescriptorSetPath: c.String("descriptor-set-out"),
		Logger:            log,
	})
	outFiles, err := gen.Generate(files)
	if err != nil {
		return err
	}

	outDir := c.String("out")
	for _, f := range outFiles {
		path := filepath.Join(outDir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, "creating output directory for %s", f.Name)
		}
		if err := os.WriteFile(path, f.Contents, 0644); err != nil {
			return errors.Wrapf(err, "writing %s", f.Name)
		}
		log.Debug("wrote generated file", zap.String("path", path))
	}

	if dsPath := c.String("descriptor-set-out"); dsPath != "" {
		if err := g2h.WriteDescriptorSet(dsPath, files); err != nil {
			return err
		}
	}
	return nil
}

// loadFiles resolves the input descriptors. A descriptor set and raw protos
// are mutually exclusive; the set form generates every non-well-known file in
// the set, the proto form generates exactly the named files.
func loadFiles(c *cli.Context) ([]*desc.FileDescriptor, error) {
	setPath := c.String("descriptor-set")
	protos := c.StringSlice("proto")
	if setPath != "" && len(protos) > 0 {
		return nil, errors.New("--descriptor-set and --proto are mutually exclusive")
	}

	if setPath != "" {
		raw, err := os.ReadFile(setPath)
		if err != nil {
			return nil, errors.Wrap(err, "reading descriptor set")
		}
		var fds descriptorpb.FileDescriptorSet
		if err := proto.Unmarshal(raw, &fds); err != nil {
			return nil, errors.Wrapf(err, "parsing descriptor set %s", setPath)
		}
		byName, err := desc.CreateFileDescriptorsFromSet(&fds)
		if err != nil {
			return nil, errors.Wrap(err, "resolving descriptor set")
		}
		var files []*desc.FileDescriptor
		for _, fdp := range fds.GetFile() {
			name := fdp.GetName()
			if strings.HasPrefix(name, "google/protobuf/") {
				continue
			}
			files = append(files, byName[name])
		}
		return files, nil
	}

	if len(protos) == 0 {
		return nil, nil
	}
	parser := protoparse.Parser{
		ImportPaths:           c.StringSlice("import-path"),
		IncludeSourceCodeInfo: true,
	}
	files, err := parser.ParseFiles(protos...)
	if err != nil {
		return nil, errors.Wrap(err, "compiling protos")
	}
	return files, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return zap.NewDevelopment(zap.IncreaseLevel(level))
}
