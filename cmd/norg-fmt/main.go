package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	norgfmt "github.com/nvim-neorg/norg-fmt"
)

const defaultLineLength = norgfmt.DefaultLineLength

func init() {
	version.SetDefaultModule("github.com/nvim-neorg/norg-fmt")
}

func main() {
	var (
		lineLength           int
		newlineAfterHeadings bool
		indentHeadings       bool
		verify               bool
		write                bool
		check                bool
		outPath              string
		configPath           string
		dumpTree             bool
		showVersion          bool
	)

	flags := pflag.NewFlagSet("norg-fmt", pflag.ExitOnError)
	flags.IntVarP(&lineLength, "line-length", "l", defaultLineLength, "Maximum paragraph line length (0 uses terminal width if available)")
	flags.BoolVar(&newlineAfterHeadings, "newline-after-headings", false, "Add an extra newline after a heading title to separate the content")
	flags.BoolVar(&indentHeadings, "indent-headings", false, "Indent nested heading titles instead of keeping them at column zero")
	flags.BoolVar(&verify, "verify", false, "Verify the AST of the output after formatting")
	flags.BoolVarP(&write, "write", "w", false, "Rewrite input files in place instead of printing to stdout")
	flags.BoolVar(&check, "check", false, "Exit non-zero if any input is not canonically formatted")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&configPath, "config", "", "Explicit "+norgfmt.ConfigFileName+" path (default: discovered upward from the working directory)")
	flags.BoolVar(&dumpTree, "dump-tree", false, "Print the syntax tree instead of formatting")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: norg-fmt [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Norg markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}
	if write && check {
		fmt.Fprintln(os.Stderr, "--write cannot be used with --check")
		os.Exit(2)
	}

	cfg, err := resolveConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if flags.Changed("line-length") {
		cfg.LineLength = resolveLineLength(lineLength)
	}
	if flags.Changed("newline-after-headings") {
		cfg.NewlineAfterHeadings = newlineAfterHeadings
	}
	if flags.Changed("indent-headings") {
		cfg.IndentHeadings = indentHeadings
	}

	args := flags.Args()
	if write || check {
		if err := formatFiles(args, cfg, write); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	reader, closer, err := openInputs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	src, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if dumpTree {
		fmt.Fprint(writer, norgfmt.Dump(norgfmt.Parse(src), src))
		return
	}

	out, err := norgfmt.Format(src, norgfmt.WithConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "format: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(writer, out)

	if verify {
		fmt.Println("AST verification is not implemented yet!")
	}
}

// formatFiles formats each file argument individually. In write mode files
// that change are rewritten; in check mode nothing is touched and any
// non-canonical file fails the run.
func formatFiles(args []string, cfg norgfmt.Config, write bool) error {
	if len(args) == 0 {
		return fmt.Errorf("--write and --check require file arguments")
	}
	var dirty []string
	for _, arg := range args {
		path := normalizePath(arg)
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := norgfmt.Format(src, norgfmt.WithConfig(cfg))
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		canonical := out + "\n"
		if canonical == string(src) {
			continue
		}
		dirty = append(dirty, arg)
		if !write {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(canonical), info.Mode().Perm()); err != nil {
			return err
		}
	}
	if !write && len(dirty) > 0 {
		for _, name := range dirty {
			fmt.Fprintf(os.Stderr, "not formatted: %s\n", name)
		}
		return fmt.Errorf("%d file(s) need formatting", len(dirty))
	}
	return nil
}

func resolveConfig(explicit string) (norgfmt.Config, error) {
	if explicit != "" {
		return norgfmt.LoadConfigFile(normalizePath(explicit))
	}
	path, found, err := norgfmt.FindConfigFile(".")
	if err != nil || !found {
		return norgfmt.DefaultConfig(), err
	}
	return norgfmt.LoadConfigFile(path)
}

func resolveLineLength(n int) int {
	if n > 0 {
		return n
	}
	return terminalWidth(defaultLineLength)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconvAtoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func strconvAtoi(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("invalid int")
	}
	var n int
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("invalid int")
		}
		n = n*10 + int(value[i]-'0')
	}
	return n, nil
}
