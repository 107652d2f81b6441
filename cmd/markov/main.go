// Command markov is a reference CLI around the markov package: train a
// model from stdin or a file, sample text from it, and save/load the
// trained table to the binary wire format.
package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/szymonszl/markov"
	"github.com/szymonszl/markov/internal/config"
)

var log = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
	Prefix:          "markov",
})

func main() {
	if os.Getenv("MARKOV_DEBUG") == "1" {
		log.SetLevel(charmlog.DebugLevel)
	}

	var (
		configPath = pflag.String("config", "", "path to a TOML config file (default: "+config.DefaultPath()+")")
		debug      = pflag.Bool("debug", false, "enable debug logging")
		bucketBits = pflag.Int("bucket-bits", 0, "override the configured bucket-count exponent")
		seed       = pflag.Uint32("seed", 0, "override the configured PRNG seed")
		loadPath   = pflag.String("load", "", "load a trained model from this file instead of training")
		savePath   = pflag.String("save", "", "save the trained model to this file")
		trainPath  = pflag.String("train", "", "read training text from this file (default: stdin)")
		count      = pflag.Int("count", 0, "override the configured number of generated lines")
		maxRunes   = pflag.Int("max-runes", 0, "override the configured per-line code point limit")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Train a Markov model from text and sample generated lines from it.\n\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSubcommands:\n  stats FILE   print a trained model's table occupancy as YAML\n")
	}
	pflag.Parse()

	if *debug {
		log.SetLevel(charmlog.DebugLevel)
	}

	if pflag.NArg() > 0 && pflag.Arg(0) == "stats" {
		if pflag.NArg() != 2 {
			fmt.Fprintln(os.Stderr, "stats requires exactly one FILE argument")
			os.Exit(1)
		}
		runStats(pflag.Arg(1))
		return
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Warn("config load failed, using defaults", "path", path, "err", err)
	}

	if *bucketBits != 0 {
		cfg.Model.BucketBits = *bucketBits
	}
	if *seed != 0 {
		cfg.Model.Seed = *seed
	}
	if *count != 0 {
		cfg.Generate.Count = *count
	}
	if *maxRunes != 0 {
		cfg.Generate.MaxRunes = *maxRunes
	}

	var m *markov.Model
	if *loadPath != "" {
		m, err = loadModel(*loadPath, cfg.Model.BucketBits, cfg.Model.Seed)
	} else {
		m, err = trainModel(*trainPath, cfg.Model.BucketBits, cfg.Model.Seed)
	}
	if err != nil {
		log.Fatal("could not build model", "err", err)
	}
	log.Debug("model ready", "rules", m.RuleCount(), "maxChainLen", m.MaxChainLen())

	if *savePath != "" {
		if err := saveModel(m, *savePath); err != nil {
			log.Fatal("save failed", "path", *savePath, "err", err)
		}
		log.Debug("model saved", "path", *savePath)
	}

	for i := 0; i < cfg.Generate.Count; i++ {
		s, err := m.GenerateString(cfg.Generate.MaxRunes)
		if err != nil {
			log.Fatal("generate failed", "err", err)
		}
		fmt.Println(s)
	}
}

func trainModel(path string, bucketBits int, seed uint32) (*markov.Model, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m, err := markov.New(bucketBits, markov.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	m.Train(data)
	return m, nil
}

func loadModel(path string, bucketBits int, seed uint32) (*markov.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markov.Load(f, bucketBits, markov.WithSeed(seed))
}

func saveModel(m *markov.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Save(f)
}

type statsReport struct {
	BucketCount       int `yaml:"bucket_count"`
	RuleCount         int `yaml:"rule_count"`
	MaxChainLen       int `yaml:"max_chain_len"`
	ContinuationCount int `yaml:"continuation_count"`
}

func runStats(path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("could not open model file", "path", path, "err", err)
	}
	defer f.Close()

	m, err := markov.Load(f, 16)
	if err != nil {
		log.Fatal("could not load model", "path", path, "err", err)
	}

	report := statsReport{
		BucketCount:       1 << uint(m.BucketBits()),
		RuleCount:         m.RuleCount(),
		MaxChainLen:       m.MaxChainLen(),
		ContinuationCount: m.ContinuationCount(),
	}
	out, err := yaml.Marshal(report)
	if err != nil {
		log.Fatal("could not marshal stats", "err", err)
	}
	os.Stdout.Write(out)
}
