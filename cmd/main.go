package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/auraspeak/confbridge"
	"github.com/auraspeak/confbridge/internal/config"
	"github.com/auraspeak/confbridge/pkg/bridge"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the tool configuration")
	initCfg := flag.Bool("init-config", false, "write a default configuration to -config and exit")
	listMethods := flag.Bool("methods", false, "list bridge methods and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <method> [payload-file ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *initCfg {
		if err := config.WriteDefaultConfig(*cfgPath); err != nil {
			log.WithError(err).Fatal("Failed to write default config")
		}
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}
	lvl, _ := cfg.LogLevel()
	log.SetLevel(lvl)

	b := confbridge.New()
	if *listMethods {
		for _, m := range b.Methods() {
			fmt.Println(m)
		}
		return
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	args := make([]bridge.Map, 0, flag.NArg()-1)
	for _, path := range flag.Args()[1:] {
		m, err := readPayload(path, cfg.Input.Format)
		if err != nil {
			log.WithError(err).Fatal("Failed to read payload")
		}
		args = append(args, m)
	}

	out, err := b.Call(flag.Arg(0), args...)
	if err != nil {
		os.Exit(1)
	}
	data, err := bridge.EncodeYAML(out)
	if err != nil {
		log.WithError(err).Fatal("Failed to encode result")
	}
	os.Stdout.Write(data)
}

// readPayload decodes one payload file. "-" reads stdin. When format is empty it
// is taken from the file extension, defaulting to JSON.
func readPayload(path, format string) (bridge.Map, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
			format = config.FormatYAML
		default:
			format = config.FormatJSON
		}
	}
	if format == config.FormatYAML {
		return bridge.DecodeYAML(data)
	}
	return bridge.DecodeJSON(data)
}
