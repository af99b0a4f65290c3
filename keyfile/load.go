package keyfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bstree"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// DefaultBatchSize is the number of lines the loader parses before handing
// their keys over to the caller.
const DefaultBatchSize = 64

var (
	// ErrNotAKey signals a token in a key file which is not an integer.
	ErrNotAKey = errors.New("keyfile: not a key")
	// ErrIncomplete signals that loading stopped before the end of the file.
	ErrIncomplete = errors.New("keyfile: loading incomplete")
)

// batch is the message published by the loading goroutine.
// line is the number of the last line covered by the batch, done flags the
// last message for a file.
type batch struct {
	keys []int
	line int
	err  error
	done bool
}

// keyFile represents an OS file which will be loaded as a tree.
type keyFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a key file and builds a balanced tree from its keys.
// Clients may indicate a batch size, i.e. the number of lines parsed
// before keys are handed over to the tree builder. A batch size of 0 lets
// Load use DefaultBatchSize.
//
// Reading happens in a separate goroutine, but Load returns only after the
// complete file has been processed. Cancelling ctx aborts loading, and Load
// returns the context's error.
func Load(ctx context.Context, name string, batchSize int) (*bstree.Tree[int], error) {
	keys, err := ReadKeys(ctx, name, batchSize)
	if err != nil {
		return nil, err
	}
	return bstree.New(keys...), nil
}

// ReadKeys reads all keys of a key file, in the order of their appearance.
// See Load for the meaning of the parameters.
func ReadKeys(ctx context.Context, name string, batchSize int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	kf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	sub, ok := kf.cast.Sub(ctx, 4)
	if !ok {
		kf.file.Close()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: cannot subscribe to loader of %s", ErrIncomplete, name)
	}
	go kf.loadBatches(ctx, batchSize)
	var keys []int
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case m, ok := <-sub:
			if !ok {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("%w: %s", ErrIncomplete, name)
			}
			b := m.(batch)
			if b.err != nil {
				return nil, b.err
			}
			keys = append(keys, b.keys...)
			tracer().Debugf("keyfile: received %d keys up to line %d", len(b.keys), b.line)
			if b.done {
				tracer().Infof("keyfile: loaded %d keys from %s", len(keys), name)
				return keys, nil
			}
		}
	}
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*keyFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("keyfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	kf := &keyFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when batches are parsed
	}
	return kf, nil
}

// --- File loading goroutine ------------------------------------------------

func (kf *keyFile) loadBatches(ctx context.Context, batchSize int) {
	defer kf.cast.Close()
	defer kf.file.Close()
	scanner := bufio.NewScanner(kf.file)
	var b batch
	lineno := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return // subscribers see a closed channel
		}
		lineno++
		keys, err := parseLine(scanner.Text())
		if err != nil {
			kf.cast.Pub(batch{err: fmt.Errorf("%s line %d: %w", kf.path, lineno, err), line: lineno})
			return
		}
		b.keys = append(b.keys, keys...)
		if lineno%batchSize == 0 {
			b.line = lineno
			kf.cast.Pub(b)
			b = batch{}
		}
	}
	if err := scanner.Err(); err != nil {
		kf.cast.Pub(batch{err: fmt.Errorf("keyfile: error reading %s: %w", kf.path, err), line: lineno})
		return
	}
	b.line = lineno
	b.done = true
	kf.cast.Pub(b)
}

// --- Helpers ---------------------------------------------------------------

// parseLine extracts the keys from a line of text.
func parseLine(line string) ([]int, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotAKey, f)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
