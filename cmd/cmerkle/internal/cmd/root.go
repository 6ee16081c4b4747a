// Package cmd implements the cmerkle command line.
package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gordian-engine/cmerkle"
	"github.com/spf13/cobra"
)

// Options customizes [NewRootCommand].
type Options struct {
	// Log, if set, is used instead of a text logger on stderr
	// built from the configured log level.
	Log *slog.Logger
}

// env is the state shared by every subcommand,
// resolved once the persistent flags are parsed.
type env struct {
	opts Options

	cfg     Config
	treeCfg cmerkle.TreeConfig
	log     *slog.Logger
}

// NewRootCommand returns the cmerkle command with every subcommand attached.
func NewRootCommand(opts Options) *cobra.Command {
	e := &env{opts: opts}

	root := &cobra.Command{
		Use:   "cmerkle",
		Short: "Commutative Merkle trees over sets of items",
		Long: `cmerkle builds a binary Merkle tree over a set of items,
hashing each item, deduplicating and sorting the leaves,
and combining every pair of nodes smaller digest first.

Items are given as arguments, or one per line with --items-file.
Digests and proofs are printed and read as hex.`,

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "Path to a TOML configuration file")
	pf.String("hash", "", "Hasher for items and nodes (default from config, else keccak256)")
	pf.String("odd-tail", "", "Odd tail handling: self-pair or promote (default from config, else self-pair)")
	pf.String("log-level", "", "Log level: debug, info, warn, or error")

	root.AddCommand(
		newInitCommand(),
		newRootHashCommand(e),
		newProveCommand(e),
		newContainsCommand(e),
		newVerifyCommand(e),
	)

	return root
}

func (e *env) load(cmd *cobra.Command) error {
	cfg := DefaultConfig()

	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return err
		}
	}

	for flag, dst := range map[string]*string{
		"hash":      &cfg.Hash,
		"odd-tail":  &cfg.OddTail,
		"log-level": &cfg.LogLevel,
	} {
		if flags.Changed(flag) {
			*dst, _ = flags.GetString(flag)
		}
	}

	treeCfg, err := cfg.TreeConfig()
	if err != nil {
		return err
	}

	log := e.opts.Log
	if log == nil {
		lvl, err := cfg.Level()
		if err != nil {
			return err
		}
		log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: lvl,
		}))
	}

	e.cfg = cfg
	e.treeCfg = treeCfg
	e.log = log.With("hash", cfg.Hash, "odd_tail", treeCfg.OddTail)
	return nil
}

// addItemsFlag registers the --items-file flag shared by commands that build a tree.
func addItemsFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(
		"items-file", "f", "",
		`File with one item per line, or "-" for stdin; used in addition to arguments`,
	)
}

// buildTree builds a tree from the positional arguments
// and the optional --items-file.
func (e *env) buildTree(cmd *cobra.Command, args []string) (*cmerkle.Tree, error) {
	items := make([][]byte, 0, len(args))
	for _, a := range args {
		items = append(items, []byte(a))
	}

	if path, _ := cmd.Flags().GetString("items-file"); path != "" {
		fileItems, err := readItems(cmd, path)
		if err != nil {
			return nil, err
		}
		items = append(items, fileItems...)
	}

	tree := cmerkle.NewTree(items, e.treeCfg)

	e.log.Debug(
		"Built tree",
		"items", len(items),
		"leaves", tree.Len(),
		"height", tree.Height(),
	)

	return tree, nil
}

func readItems(cmd *cobra.Command, path string) ([][]byte, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open items file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items [][]byte
	s := bufio.NewScanner(r)
	for s.Scan() {
		// Scanner reuses its buffer, so each item needs its own copy.
		items = append(items, append([]byte(nil), s.Bytes()...))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// decodeDigest decodes a hex digest of the configured hash size.
func (e *env) decodeDigest(what, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	if len(b) != e.treeCfg.HashSize {
		return nil, fmt.Errorf(
			"invalid %s %q: got %d bytes, want %d", what, s, len(b), e.treeCfg.HashSize,
		)
	}
	return b, nil
}
