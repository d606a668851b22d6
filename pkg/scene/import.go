package scene

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shapeboard/pkg/errors"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

// ReadJSON decodes a scene from r. The input is either a scene object or a
// bare array of shape descriptors. Unknown shape types decode successfully;
// they are dropped at render time, not here.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Scene, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		return Scene{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode")
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var shapes []shape.Descriptor
		if err := dec.Decode(&shapes); err != nil {
			return Scene{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode")
		}
		return Scene{Shapes: shapes}, nil
	}

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return Scene{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode")
	}
	return s, nil
}

// ReadTOML decodes a scene from r. Shapes are given as [[shapes]] tables.
func ReadTOML(r io.Reader) (Scene, error) {
	var s Scene
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Scene{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode")
	}
	return s, nil
}

// Import reads the scene file at path, choosing the decoder by extension:
// ".toml" uses [ReadTOML], anything else [ReadJSON]. A scene without a name is
// named after the file.
func Import(path string) (Scene, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Scene{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return Scene{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var s Scene
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		s, err = ReadTOML(f)
	} else {
		s, err = ReadJSON(f)
	}
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
