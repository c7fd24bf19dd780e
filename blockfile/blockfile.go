// Copyright (c) 2020 Michael Madgett
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package blockfile reads the magic framed blkNNNNN.dat files a node keeps
// below its network data directory, and checks that they belong to the
// network they are stored under.
package blockfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/btcsuite/btcd/wire"
	"github.com/magic53/go-chainparams/chaincfg"
	"github.com/sirupsen/logrus"
)

// BlocksDirName is the directory below a network data directory holding the
// block files.
const BlocksDirName = "blocks"

var (
	// ErrNoBlockFiles describes a blocks directory without block files.
	ErrNoBlockFiles = errors.New("no block files found")

	// ErrGenesisNotFound describes block files holding no block framed with
	// the network's magic bytes.
	ErrGenesisNotFound = errors.New("no block found for network")

	// ErrGenesisMismatch describes block files whose first block is not the
	// network's genesis block.
	ErrGenesisMismatch = errors.New("first block is not the network genesis block")
)

var blockFileRe = regexp.MustCompile(`^blk(\d+)\.dat$`)

// Files finds the block files in blocksDir, oldest first.
func Files(blocksDir string) (files []string, err error) {
	exists := false
	if exists, err = FileExists(blocksDir); err != nil {
		return
	}
	if !exists {
		err = fmt.Errorf("file doesn't exist: %s", blocksDir)
		return
	}

	var fileInfos []os.FileInfo
	if fileInfos, err = ioutil.ReadDir(blocksDir); err != nil {
		return
	}

	type numbered struct {
		name string
		n    int64
	}
	var found []numbered
	for _, fi := range fileInfos {
		m := blockFileRe.FindStringSubmatch(fi.Name())
		if m == nil || fi.IsDir() {
			continue
		}
		n, err2 := strconv.ParseInt(m[1], 10, 64)
		if err2 != nil {
			continue
		}
		found = append(found, numbered{name: fi.Name(), n: n})
	}
	if len(found) == 0 {
		err = fmt.Errorf("%w in %s", ErrNoBlockFiles, blocksDir)
		return
	}

	sort.Slice(found, func(a, b int) bool {
		return found[a].n < found[b].n
	})
	for _, f := range found {
		files = append(files, filepath.Join(blocksDir, f.name))
	}
	return
}

// Scan finds every record framed with magic in the reader and hands its
// payload to handle. Bytes outside a matching frame, including records of
// other networks, are skipped. Scanning stops when handle returns false or
// the reader is exhausted. It returns the number of records handled.
func Scan(sc *bufio.Reader, magic [4]byte, handle func([]byte) bool) (count int, err error) {
	for {
		var b byte
		if b, err = sc.ReadByte(); err != nil {
			break
		}
		if b != magic[0] { // check for network byte delim
			continue
		}
		var pb []byte
		if pb, err = sc.Peek(3); err != nil {
			break
		}
		if !bytes.Equal(pb, magic[1:]) { // check if network matches
			continue
		}

		// We're at the block, discard network magic number bytes
		if _, err = sc.Discard(3); err != nil {
			break
		}
		sizeBytes := make([]byte, 4)
		if _, err = io.ReadFull(sc, sizeBytes); err != nil {
			break
		}
		size := binary.LittleEndian.Uint32(sizeBytes)
		if size < wire.MaxBlockHeaderPayload || size > wire.MaxBlockPayload {
			log.WithField("size", size).Debug("skipping record with bad size")
			continue
		}

		blockBytes := make([]byte, size)
		if _, err = io.ReadFull(sc, blockBytes); err != nil {
			break
		}
		count++
		if !handle(blockBytes) { // ask delegate if we can proceed
			break
		}
	}

	if err == io.EOF || err == io.ErrUnexpectedEOF { // not fatal
		err = nil
	}
	return
}

// ReadBlockHeader reads the 80 byte header at the start of a serialized
// block.
func ReadBlockHeader(buf io.Reader) (*wire.BlockHeader, error) {
	header := &wire.BlockHeader{}
	if err := header.Deserialize(buf); err != nil {
		return nil, err
	}
	return header, nil
}

// VerifyGenesis checks that the first block stored for the network below
// dataDir is the network's genesis block. The data directory is the node's
// base directory; the network subdirectory is added here.
func VerifyGenesis(dataDir string, params *chaincfg.Params) error {
	blocksDir := filepath.Join(params.DataDir(dataDir), BlocksDirName)
	files, err := Files(blocksDir)
	if err != nil {
		return err
	}

	f, err := os.Open(files[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var header *wire.BlockHeader
	var readErr error
	_, err = Scan(bufio.NewReader(f), params.MessageStart(), func(block []byte) bool {
		header, readErr = ReadBlockHeader(bytes.NewReader(block))
		return false
	})
	if err != nil {
		return err
	}
	if readErr != nil {
		return fmt.Errorf("failed to read block header in %s: %w", files[0], readErr)
	}
	if header == nil {
		return fmt.Errorf("%w %s in %s", ErrGenesisNotFound, params.Name, files[0])
	}

	hash := params.BlockHash(header)
	if hash != params.GenesisHash {
		return fmt.Errorf("%w: %s has %s, want %s", ErrGenesisMismatch, files[0], hash, params.GenesisHash)
	}
	log.WithFields(logrus.Fields{
		"network": params.Name,
		"file":    files[0],
	}).Info("genesis block verified")
	return nil
}

// FileExists reports whether path exists. Errors other than a missing path
// are returned.
func FileExists(path string) (bool, error) {
	switch _, err := os.Stat(path); {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
